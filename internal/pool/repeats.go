package pool

import "fmt"

// ValidateUnique asserts that a selection did not return an id the session
// had already shown, unless the pool was reset in the same call. It is a
// test and diagnostic guard: an error here indicates a bug in Select, not a
// runtime condition callers should handle.
func ValidateUnique(sel Selection, shownBefore []string) error {
	if sel.QuestionID == "" || sel.Reset {
		return nil
	}
	for _, id := range shownBefore {
		if id == sel.QuestionID {
			return fmt.Errorf("question %q repeated without a pool reset", sel.QuestionID)
		}
	}
	return nil
}

// DetectRepeats returns the ids that appear more than once in order of
// first repeat. Used by tests to assert a served-question log is clean.
func DetectRepeats(ids []string) []string {
	seen := make(map[string]int, len(ids))
	var repeats []string
	for _, id := range ids {
		seen[id]++
		if seen[id] == 2 {
			repeats = append(repeats, id)
		}
	}
	return repeats
}
