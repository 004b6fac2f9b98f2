package quiz

// Groups partitions item labels by rating, in original item order.
type Groups struct {
	Important     []string `json:"important" yaml:"important"`
	Neutral       []string `json:"neutral" yaml:"neutral"`
	LessImportant []string `json:"less_important" yaml:"less_important"`
}

// For returns the group holding rating.
func (g Groups) For(rating Rating) []string {
	switch rating {
	case Important:
		return g.Important
	case Neutral:
		return g.Neutral
	case LessImportant:
		return g.LessImportant
	default:
		return nil
	}
}

// Total returns the number of labels across all groups.
func (g Groups) Total() int {
	return len(g.Important) + len(g.Neutral) + len(g.LessImportant)
}

// Categorize groups rated items by rating. Unset items are left out.
func (s *State) Categorize() Groups {
	groups := Groups{
		Important:     []string{},
		Neutral:       []string{},
		LessImportant: []string{},
	}
	for _, item := range s.items {
		switch item.Rating {
		case Important:
			groups.Important = append(groups.Important, item.Text)
		case Neutral:
			groups.Neutral = append(groups.Neutral, item.Text)
		case LessImportant:
			groups.LessImportant = append(groups.LessImportant, item.Text)
		}
	}
	return groups
}
