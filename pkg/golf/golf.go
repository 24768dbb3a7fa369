package golf

// Hole is a single puzzle as returned by the code.golf API. Every hole has
// its own independent leaderboard.
type Hole struct {
	Category string     `json:"category"`
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Preamble string     `json:"preamble"`
	Links    []HoleLink `json:"links"`
}

type HoleLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Solution is one raw submission from a hole's solutions log. Submitted is
// kept as the API's fixed-width timestamp string: zero-padded UTC text, so
// lexicographic order equals chronological order.
type Solution struct {
	Bytes     int    `json:"bytes"`
	Chars     int    `json:"chars"`
	Golfer    string `json:"golfer"`
	Hole      string `json:"hole"`
	Lang      string `json:"lang"`
	Scoring   string `json:"scoring"`
	Submitted string `json:"submitted"`
}

// SolutionLog is the complete submission history for one hole.
type SolutionLog struct {
	HoleID    string
	HoleName  string
	Solutions []Solution
}
