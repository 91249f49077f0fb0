package activity

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2020, 7, 12, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp: testTime,
		SessionID: "5f1c8d1e-2b8a-4b8e-9f0e-3f5b6b1c2d3e",
		UserName:  "js",
		Action:    "transfer",
		Outcome:   OutcomeOK,
		Details:   "100.00 to jd",
	}
}

func logPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "logs", "activity.csv")
}

func TestAppend_NewFile(t *testing.T) {
	path := logPath(t)
	require.NoError(t, Append(path, []Entry{testEntry()}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "transfer", entries[0].Action)
}

func TestAppend_ExistingFile(t *testing.T) {
	path := logPath(t)
	require.NoError(t, Append(path, []Entry{testEntry()}))

	e2 := testEntry()
	e2.Action = "loan"
	e2.Outcome = OutcomeRejected
	require.NoError(t, Append(path, []Entry{e2}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "transfer", entries[0].Action)
	assert.Equal(t, "loan", entries[1].Action)
	assert.Equal(t, OutcomeRejected, entries[1].Outcome)
}

func TestRead_RoundTrip(t *testing.T) {
	path := logPath(t)
	original := testEntry()
	original.Details = "note, with comma"
	require.NoError(t, Append(path, []Entry{original}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, original.SessionID, got.SessionID)
	assert.Equal(t, original.UserName, got.UserName)
	assert.Equal(t, original.Details, got.Details)
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(logPath(t))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_HeaderOnly(t *testing.T) {
	path := logPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(Header+"\n"), 0o644))

	entries, err := Read(path)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"one", "two"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected 6 fields")
}

func TestTimestampFormat(t *testing.T) {
	row := MarshalEntry(testEntry())
	assert.Equal(t, "2020-07-12T10:30:00Z", row[0])
}
