package command

import "fmt"

// Stage is one of the three ordered queue tiers on the sink bot. The tier
// number is all the sink cares about; the name is the user-facing group.
type Stage struct {
	Name string
	Tier int
}

var (
	QC = Stage{Name: "qc", Tier: 1}
	ST = Stage{Name: "st", Tier: 2}
	LC = Stage{Name: "lc", Tier: 3}
)

// List formats the listing command for entry n. The sink expects the lc
// queue named explicitly on list; the other tiers go by number alone.
func (s Stage) List(n uint64) string {
	if s.Name == LC.Name {
		return fmt.Sprintf("sauce lc %d#%d", s.Tier, n)
	}
	return fmt.Sprintf("sauce %d#%d", s.Tier, n)
}

// Move formats the command moving entry n to the next tier.
func (s Stage) Move(n uint64) string {
	return fmt.Sprintf("sauce move %d#%d %d", s.Tier, n, s.Tier+1)
}

// Delete formats the command deleting entry n from this tier.
func (s Stage) Delete(n uint64) string {
	return fmt.Sprintf("sauce delete %d#%d", s.Tier, n)
}
