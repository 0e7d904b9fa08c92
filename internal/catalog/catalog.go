// Package catalog holds the fixed subject, class and badge catalogs shared by
// the API and the badge evaluator.
package catalog

type Subject struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type Class struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RequirementType string

const (
	NotesCount     RequirementType = "notes_count"
	TotalLikes     RequirementType = "total_likes"
	UniqueSubjects RequirementType = "unique_subjects"
	FollowersCount RequirementType = "followers_count"
)

type Requirement struct {
	Type  RequirementType `json:"type"`
	Value int64           `json:"value"`
}

type Badge struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Icon        string      `json:"icon"`
	Desc        string      `json:"desc"`
	Requirement Requirement `json:"requirement"`
}

var Subjects = []Subject{
	{ID: "math", Name: "Mathematics", Icon: "📐", Color: "#8b5cf6"},
	{ID: "physics", Name: "Physics", Icon: "⚛️", Color: "#06b6d4"},
	{ID: "cs", Name: "Computer Science", Icon: "💻", Color: "#3b82f6"},
	{ID: "english", Name: "English", Icon: "📝", Color: "#ec4899"},
	{ID: "history", Name: "History", Icon: "📜", Color: "#f97316"},
	{ID: "chemistry", Name: "Chemistry", Icon: "🧪", Color: "#10b981"},
	{ID: "biology", Name: "Biology", Icon: "🧬", Color: "#fbbf24"},
	{ID: "economics", Name: "Economics", Icon: "📊", Color: "#a78bfa"},
}

var Classes = []Class{
	{ID: "9", Name: "Class 9"},
	{ID: "10", Name: "Class 10"},
	{ID: "11", Name: "Class 11"},
	{ID: "12", Name: "Class 12"},
	{ID: "ug", Name: "Undergraduate"},
}

// Topics constrains the topic of a note by its subject.
var Topics = map[string][]string{
	"math":      {"Algebra", "Geometry", "Calculus", "Trigonometry", "Statistics", "Probability", "Linear Algebra", "Number Theory"},
	"physics":   {"Mechanics", "Thermodynamics", "Optics", "Electromagnetism", "Modern Physics", "Waves", "Quantum Physics"},
	"cs":        {"Data Structures", "Algorithms", "OOP", "Databases", "Web Development", "Machine Learning", "Networks", "Operating Systems"},
	"english":   {"Grammar", "Literature", "Essay Writing", "Poetry", "Comprehension", "Vocabulary", "Creative Writing"},
	"history":   {"Ancient History", "Medieval History", "Modern History", "World Wars", "Indian History", "Civilization Studies"},
	"chemistry": {"Organic Chemistry", "Inorganic Chemistry", "Physical Chemistry", "Electrochemistry", "Atomic Structure"},
	"biology":   {"Cell Biology", "Genetics", "Ecology", "Human Anatomy", "Evolution", "Microbiology", "Botany"},
	"economics": {"Microeconomics", "Macroeconomics", "Statistics", "Indian Economy", "Development", "Money & Banking"},
}

var Badges = []Badge{
	{ID: "first_note", Name: "First Steps", Icon: "🌟", Desc: "Share your first note", Requirement: Requirement{Type: NotesCount, Value: 1}},
	{ID: "five_notes", Name: "Rising Star", Icon: "⭐", Desc: "Share 5 notes", Requirement: Requirement{Type: NotesCount, Value: 5}},
	{ID: "ten_notes", Name: "Prolific Writer", Icon: "✨", Desc: "Share 10 notes", Requirement: Requirement{Type: NotesCount, Value: 10}},
	{ID: "twenty_notes", Name: "Note Master", Icon: "🏆", Desc: "Share 20 notes", Requirement: Requirement{Type: NotesCount, Value: 20}},
	{ID: "popular", Name: "Crowd Favorite", Icon: "❤️", Desc: "Get 10 total likes", Requirement: Requirement{Type: TotalLikes, Value: 10}},
	{ID: "viral", Name: "Going Viral", Icon: "🔥", Desc: "Get 50 total likes", Requirement: Requirement{Type: TotalLikes, Value: 50}},
	{ID: "multi_subject", Name: "Renaissance", Icon: "🎨", Desc: "Share notes in 3+ subjects", Requirement: Requirement{Type: UniqueSubjects, Value: 3}},
	{ID: "all_rounder", Name: "All-Rounder", Icon: "🌈", Desc: "Share notes in 5+ subjects", Requirement: Requirement{Type: UniqueSubjects, Value: 5}},
	{ID: "follower_5", Name: "Influencer", Icon: "👥", Desc: "Gain 5 followers", Requirement: Requirement{Type: FollowersCount, Value: 5}},
	{ID: "follower_20", Name: "Community Star", Icon: "💫", Desc: "Gain 20 followers", Requirement: Requirement{Type: FollowersCount, Value: 20}},
}

func ValidSubject(id string) bool {
	for _, s := range Subjects {
		if s.ID == id {
			return true
		}
	}
	return false
}

func ValidClass(id string) bool {
	for _, c := range Classes {
		if c.ID == id {
			return true
		}
	}
	return false
}

func ValidTopic(subject, topic string) bool {
	for _, t := range Topics[subject] {
		if t == topic {
			return true
		}
	}
	return false
}
