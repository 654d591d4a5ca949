package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_MoreSharedSkillsScoresHigher(t *testing.T) {
	p := Profile{Skills: []string{"Gardening", "Cleaning", "Cooking"}, City: "Bristol"}

	one := Candidate{Skills: []string{"Gardening"}, City: "Bristol"}
	two := Candidate{Skills: []string{"Gardening", "Cleaning"}, City: "Bristol"}
	three := Candidate{Skills: []string{"Gardening", "Cleaning", "Cooking"}, City: "Bristol"}

	assert.Greater(t, Score(p, two), Score(p, one))
	assert.Greater(t, Score(p, three), Score(p, two))
}

func TestScore_CityBonus(t *testing.T) {
	p := Profile{Skills: []string{"Repairs"}, City: "Leeds"}

	local := Candidate{Skills: []string{"Repairs"}, City: "Leeds"}
	remote := Candidate{Skills: []string{"Repairs"}, City: "Glasgow"}

	assert.Greater(t, Score(p, local), Score(p, remote))

	// Case-insensitive city comparison.
	assert.Equal(t, Score(p, local), Score(p, Candidate{Skills: []string{"Repairs"}, City: "LEEDS"}))
}

func TestScore_NoCityBonusForEmptyProfileCity(t *testing.T) {
	p := Profile{Skills: nil, City: ""}
	assert.Equal(t, 0, Score(p, Candidate{Skills: []string{"Cooking"}, City: ""}))
}

func TestScore_Bounds(t *testing.T) {
	allTags := []string{
		"Heavy Lifting", "Tech Help", "Gardening", "Transportation", "Cleaning",
		"Cooking", "Tutoring", "Pet Care", "Repairs", "Arts & Crafts", "Others",
	}
	p := Profile{Skills: allTags, City: "Bath"}
	best := Score(p, Candidate{Skills: allTags, City: "Bath"})
	assert.LessOrEqual(t, best, 100)
	assert.GreaterOrEqual(t, best, 0)

	worst := Score(Profile{}, Candidate{})
	assert.Equal(t, 0, worst)
}

func TestScore_Deterministic(t *testing.T) {
	p := Profile{Skills: []string{"Pet Care", "Tutoring"}, City: "Cardiff"}
	c := Candidate{Skills: []string{"Pet Care"}, City: "Cardiff"}

	first := Score(p, c)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(p, c))
	}
}

type rankedTask struct {
	name   string
	skills []string
	city   string
	score  int
}

func rankTasks(p Profile, tasks []rankedTask) []rankedTask {
	Rank(p, tasks,
		func(t rankedTask) Candidate { return Candidate{Skills: t.skills, City: t.city} },
		func(t *rankedTask, s int) { t.score = s },
	)
	return tasks
}

func TestRank_OrdersByScoreDescending(t *testing.T) {
	p := Profile{Skills: []string{"Gardening", "Cleaning"}, City: "Bath"}

	got := rankTasks(p, []rankedTask{
		{name: "no match", skills: []string{"Tech Help"}, city: "Leeds"},
		{name: "skills and city", skills: []string{"Gardening", "Cleaning"}, city: "Bath"},
		{name: "city only", skills: nil, city: "Bath"},
	})

	assert.Equal(t, "skills and city", got[0].name)
	assert.Equal(t, "city only", got[1].name)
	assert.Equal(t, "no match", got[2].name)
	assert.Greater(t, got[0].score, got[1].score)
}

func TestRank_StableOnTies(t *testing.T) {
	p := Profile{Skills: []string{"Cooking"}, City: ""}

	// Same score for all three; server order must survive.
	got := rankTasks(p, []rankedTask{
		{name: "first", skills: []string{"Cooking"}, city: "Bath"},
		{name: "second", skills: []string{"Cooking"}, city: "Leeds"},
		{name: "third", skills: []string{"Cooking"}, city: "Exeter"},
	})

	assert.Equal(t, []string{"first", "second", "third"}, []string{got[0].name, got[1].name, got[2].name})
}

func TestRank_Idempotent(t *testing.T) {
	p := Profile{Skills: []string{"Repairs", "Pet Care"}, City: "Exeter"}
	input := []rankedTask{
		{name: "a", skills: []string{"Pet Care"}, city: "Exeter"},
		{name: "b", skills: []string{"Repairs", "Pet Care"}, city: "Leeds"},
		{name: "c", skills: nil, city: "Exeter"},
	}

	first := rankTasks(p, append([]rankedTask(nil), input...))
	second := rankTasks(p, append([]rankedTask(nil), input...))
	assert.Equal(t, first, second)
}
