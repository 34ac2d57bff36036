// Package daily holds age-appropriate recommended activity templates with
// daily targets and encouragement messages. Templates are fixed data; the
// current bracket is picked by the baby's age in months and progress is
// counted from the day's recorded activities.
package daily

import (
	"strings"

	"github.com/rpillai/babylog/internal/activity"
)

// Template is one recommended activity with a daily target.
type Template struct {
	Key         string
	Title       string
	Description string
	Category    string // physical or brain
	TargetCount int
	Minutes     int
	Benefits    string
	Keywords    []string // lowercased; any hit in a recorded description counts
	Messages    map[int]string
	Completion  string
}

type bracket struct {
	Min, Max  int // months, half-open [Min, Max)
	Templates []Template
}

var brackets = []bracket{
	{0, 3, []Template{
		{
			Key:         "tummy_time",
			Title:       "Tummy Time",
			Description: "Place baby on their tummy for 3-5 minutes while awake and supervised",
			Category:    "physical",
			TargetCount: 5,
			Minutes:     5,
			Benefits:    "Builds neck, shoulder, and core strength. Essential for motor development.",
			Keywords:    []string{"tummy"},
			Messages: map[int]string{
				0: "Let's start tummy time today!",
				1: "Great start! 4 more sessions to go",
				2: "Awesome! Halfway there!",
				3: "Amazing! Just 2 more sessions",
				4: "One more to go! {baby_name} is doing fantastic!",
			},
			Completion: "Incredible! {baby_name} completed all tummy time sessions today! Those neck and shoulder muscles are getting stronger every day.",
		},
		{
			Key:         "face_to_face_talking",
			Title:       "Face-to-Face Talking",
			Description: "Hold baby 8-10 inches from your face, make eye contact, smile, and talk warmly",
			Category:    "brain",
			TargetCount: 6,
			Minutes:     10,
			Benefits:    "Develops language skills, visual tracking, and emotional bonding.",
			Keywords:    []string{"talk", "chatted"},
			Messages: map[int]string{
				0: "Time for some bonding! Talk to {baby_name}",
				1: "Beautiful! 5 more conversations today",
				2: "You're doing great! Keep talking to {baby_name}",
				3: "Wonderful! Halfway done! {baby_name} loves hearing your voice",
				4: "Amazing connection! Just 2 more sessions",
				5: "One more! {baby_name}'s language skills are blooming",
			},
			Completion: "Outstanding! You've connected with {baby_name} 6 times today. These conversations are building the foundation for language and emotional bonding!",
		},
		{
			Key:         "reading_together",
			Title:       "Reading Together",
			Description: "Read simple board books with high-contrast images",
			Category:    "brain",
			TargetCount: 3,
			Minutes:     10,
			Benefits:    "Develops listening skills, language comprehension, and love for books.",
			Keywords:    []string{"read", "book", "story"},
			Messages: map[int]string{
				0: "Story time! Let's read to {baby_name}",
				1: "Great start! 2 more reading sessions today",
				2: "Almost there! One more book to go",
			},
			Completion: "Fantastic! Three reading sessions complete! {baby_name} is developing a love for books and learning.",
		},
	}},
	{3, 6, []Template{
		{
			Key:         "tummy_time_play",
			Title:       "Tummy Time with Toys",
			Description: "Place colorful toys just out of reach during tummy time",
			Category:    "physical",
			TargetCount: 5,
			Minutes:     15,
			Benefits:    "Strengthens muscles for rolling and crawling. Develops hand-eye coordination.",
			Keywords:    []string{"tummy"},
			Messages: map[int]string{
				0: "Tummy time with toys! Let's go!",
				1: "Excellent! 4 more to strengthen those muscles",
				2: "Halfway there! {baby_name} is getting stronger",
				3: "Terrific! Just 2 more sessions today",
				4: "Almost done! One more to go!",
			},
			Completion: "Wonderful! All tummy time sessions done! {baby_name}'s muscles are developing perfectly for rolling and crawling!",
		},
		{
			Key:         "peek_a_boo",
			Title:       "Peek-a-Boo",
			Description: "Play peek-a-boo and watch baby's delighted reaction",
			Category:    "brain",
			TargetCount: 8,
			Minutes:     5,
			Benefits:    "Teaches object permanence, cause and effect, memory and social interaction.",
			Keywords:    []string{"peek"},
			Messages: map[int]string{
				0: "Peek-a-boo time!",
				2: "Great! {baby_name} is learning about object permanence",
				4: "Keep going! Halfway there!",
				6: "Excellent! Just 2 more",
				7: "One more! {baby_name} loves this game!",
			},
			Completion: "Incredible! 8 peek-a-boo games completed! {baby_name} is understanding object permanence and cause-and-effect!",
		},
		{
			Key:         "texture_exploration",
			Title:       "Texture Exploration",
			Description: "Let baby touch different safe textures",
			Category:    "brain",
			TargetCount: 4,
			Minutes:     10,
			Benefits:    "Develops sensory processing and curiosity. Builds neural connections.",
			Keywords:    []string{"texture"},
			Messages: map[int]string{
				0: "Let's explore textures!",
				1: "Nice! 3 more sensory experiences today",
				2: "Great! Halfway through! {baby_name} is curious",
				3: "Almost there! One more texture to explore",
			},
			Completion: "Amazing! Four texture explorations done! {baby_name}'s sensory processing is developing wonderfully!",
		},
	}},
	{6, 9, []Template{
		{
			Key:         "sitting_playing",
			Title:       "Sitting & Playing",
			Description: "Practice sitting while playing with blocks or stacking cups",
			Category:    "physical",
			TargetCount: 6,
			Minutes:     15,
			Benefits:    "Develops core strength and balance. Improves fine motor skills.",
			Keywords:    []string{"sitting", "sat up"},
			Messages: map[int]string{
				0: "Sitting practice time!",
				1: "Good start! 5 more sitting sessions",
				2: "Excellent! {baby_name} is building core strength",
				3: "Halfway done! Balance is improving!",
				4: "Great job! Just 2 more sessions",
				5: "One more! {baby_name} is sitting like a pro!",
			},
			Completion: "Wonderful! Six sitting sessions completed! {baby_name}'s core strength and balance are developing beautifully!",
		},
		{
			Key:         "crawling_encouragement",
			Title:       "Crawling Encouragement",
			Description: "Place favorite toy just out of reach to encourage movement",
			Category:    "physical",
			TargetCount: 5,
			Minutes:     10,
			Benefits:    "Motivates gross motor development. Builds confidence and persistence.",
			Keywords:    []string{"crawl"},
			Messages: map[int]string{
				0: "Let's encourage crawling!",
				1: "Nice! 4 more movement sessions",
				2: "Great motivation! Keep encouraging {baby_name}",
				3: "Halfway there! Movement is improving!",
				4: "Almost done! One more encouragement session",
			},
			Completion: "Fantastic! All crawling practice done! {baby_name} is building confidence and will be mobile soon!",
		},
		{
			Key:         "baby_sign_language",
			Title:       "Baby Sign Language",
			Description: "Practice simple signs: 'milk', 'more', 'all done'",
			Category:    "brain",
			TargetCount: 10,
			Minutes:     5,
			Benefits:    "Reduces frustration, supports language development, improves communication.",
			Keywords:    []string{"sign"},
			Messages: map[int]string{
				0: "Sign language time!",
				2: "Great! {baby_name} is watching closely",
				5: "Halfway there! Signs are being learned!",
				8: "Great job! Just 2 more",
				9: "One more! {baby_name} might sign back soon!",
			},
			Completion: "Outstanding! Ten sign language sessions! {baby_name} is learning to communicate and reducing frustration!",
		},
	}},
	{9, 12, []Template{
		{
			Key:         "cruising_practice",
			Title:       "Cruising Practice",
			Description: "Encourage standing and walking while holding furniture",
			Category:    "physical",
			TargetCount: 6,
			Minutes:     15,
			Benefits:    "Develops leg strength, balance, and coordination for independent walking.",
			Keywords:    []string{"cruis", "standing", "stood"},
			Messages: map[int]string{
				0: "Let's practice cruising!",
				1: "Great start! 5 more practice sessions",
				2: "Excellent! {baby_name}'s legs are getting stronger",
				3: "Halfway there! Balance is improving!",
				4: "Wonderful! Just 2 more sessions",
				5: "One more! {baby_name} will walk soon!",
			},
			Completion: "Incredible! Six cruising sessions complete! {baby_name} is developing the balance and strength needed for walking!",
		},
		{
			Key:         "simple_puzzles",
			Title:       "Simple Puzzles",
			Description: "Offer shape sorters or simple knob puzzles",
			Category:    "brain",
			TargetCount: 4,
			Minutes:     15,
			Benefits:    "Develops problem-solving, hand-eye coordination, and spatial reasoning.",
			Keywords:    []string{"puzzle", "shape sorter"},
			Messages: map[int]string{
				0: "Puzzle time! Let's solve!",
				1: "Good! 3 more puzzle sessions",
				2: "Great problem-solving! Halfway done!",
				3: "Almost there! One more puzzle",
			},
			Completion: "Wonderful! Four puzzle sessions done! {baby_name}'s problem-solving and spatial reasoning are developing excellently!",
		},
		{
			Key:         "point_and_name",
			Title:       "Point & Name",
			Description: "Point to objects and name them clearly",
			Category:    "brain",
			TargetCount: 12,
			Minutes:     5,
			Benefits:    "Builds vocabulary rapidly. Develops understanding of communication and labeling.",
			Keywords:    []string{"point", "naming"},
			Messages: map[int]string{
				0:  "Let's name things!",
				3:  "Keep going! 9 more to go",
				6:  "Excellent! 6 more words to learn",
				10: "Wonderful! Just 2 more",
				11: "One more! {baby_name}'s vocabulary is expanding!",
			},
			Completion: "Fantastic! Twelve naming sessions completed! {baby_name}'s vocabulary is expanding rapidly!",
		},
	}},
}

// ForAge returns the templates for the bracket containing the given age in
// months. Ages past the last bracket keep its templates; a negative age
// has none.
func ForAge(months int) []Template {
	for _, b := range brackets {
		if months >= b.Min && months < b.Max {
			return b.Templates
		}
	}
	if months >= brackets[len(brackets)-1].Max {
		return brackets[len(brackets)-1].Templates
	}
	return nil
}

// Progress counts how many of the given records look like this template's
// activity, matched by keyword against the lowercased description.
func Progress(t Template, records []activity.Record) int {
	n := 0
	for _, r := range records {
		lower := strings.ToLower(r.Description)
		for _, kw := range t.Keywords {
			if strings.Contains(lower, kw) {
				n++
				break
			}
		}
	}
	return n
}

// Motivational returns the encouragement message for the current count,
// with the baby's name substituted. Counts without a specific message get
// a generic one.
func Motivational(t Template, count int, babyName string) string {
	msg, ok := t.Messages[count]
	if !ok {
		msg = "Keep going! You're doing great!"
	}
	return strings.ReplaceAll(msg, "{baby_name}", babyName)
}

// Completion returns the goal-reached message with the baby's name
// substituted.
func Completion(t Template, babyName string) string {
	return strings.ReplaceAll(t.Completion, "{baby_name}", babyName)
}
