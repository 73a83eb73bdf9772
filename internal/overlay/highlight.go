package overlay

// Highlights returns the block-local word indices to emphasize. The setup
// block lands on its last two words, the punchline block on its first. The
// rule is fixed: it depends only on the word count and role, never on word
// content, and blocks too short to carry the emphasis get none.
func Highlights(wordCount int, role Role) map[int]bool {
	set := make(map[int]bool, 2)
	switch role {
	case RoleSetup:
		if wordCount >= 2 {
			set[wordCount-2] = true
			set[wordCount-1] = true
		}
	case RolePunchline:
		if wordCount >= 1 {
			set[0] = true
		}
	}
	return set
}
