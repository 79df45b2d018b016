package unit_tests

import (
	"fmt"
	"testing"

	"gitscribe/internal/services"
	"gitscribe/internal/utils"
)

func TestHistoryService_Record_NewestFirst(t *testing.T) {
	history := services.NewHistoryService()

	history.Record("first")
	history.Record("second")
	history.Record("third")

	entries := history.Entries()
	utils.Equal(t, len(entries), 3)
	utils.Equal(t, entries[0], "third")
	utils.Equal(t, entries[1], "second")
	utils.Equal(t, entries[2], "first")
}

func TestHistoryService_Record_DuplicateKeepsPosition(t *testing.T) {
	history := services.NewHistoryService()

	history.Record("older")
	history.Record("newer")
	// Re-recording an existing entry must not promote it to the front.
	history.Record("older")

	entries := history.Entries()
	utils.Equal(t, len(entries), 2)
	utils.Equal(t, entries[0], "newer")
	utils.Equal(t, entries[1], "older")
}

func TestHistoryService_Record_OverflowDropsOldest(t *testing.T) {
	history := services.NewHistoryService()

	for i := 1; i <= 12; i++ {
		history.Record(fmt.Sprintf("message %d", i))
	}

	entries := history.Entries()
	utils.Equal(t, len(entries), 10)
	utils.Equal(t, entries[0], "message 12")
	utils.Equal(t, entries[9], "message 3")
}

func TestHistoryService_Record_IgnoresEmpty(t *testing.T) {
	history := services.NewHistoryService()

	history.Record("")

	utils.Equal(t, history.HasHistory(), false)
	utils.Equal(t, len(history.Entries()), 0)
}

func TestHistoryService_MostRecent(t *testing.T) {
	history := services.NewHistoryService()

	_, ok := history.MostRecent()
	utils.Equal(t, ok, false)

	history.Record("only entry")
	latest, ok := history.MostRecent()
	utils.Equal(t, ok, true)
	utils.Equal(t, latest, "only entry")
}

func TestHistoryService_Entries_ReturnsCopy(t *testing.T) {
	history := services.NewHistoryService()
	history.Record("kept")

	entries := history.Entries()
	entries[0] = "mutated"

	latest, _ := history.MostRecent()
	utils.Equal(t, latest, "kept")
}
