package interview

import "github.com/verte-zerg/speakscore/internal/model"

// State is a step of the interview script.
type State string

const (
	StateGreeting  State = "greeting"
	StateCompleted State = "completed"
)

type step struct {
	prompt string
	next   State
}

var conversationalScript = map[State]step{
	StateGreeting: {
		"Hello! Welcome to the Communication Assessment Interview. I'm here to have a conversation with you to evaluate your communication skills. Let's begin. Please tell me about yourself, including your background and interests.",
		"introduction",
	},
	"introduction": {
		"That's a great introduction. Now, I'd like to know more about your educational background. Can you tell me about your studies and any academic achievements that you're proud of?",
		"education",
	},
	"education": {
		"Interesting! Now let's talk about your work experience. What kind of work have you been doing, and what have you learned from these experiences?",
		"work",
	},
	"work": {
		"That sounds fulfilling. Let's discuss your communication skills. How do you usually communicate with your colleagues, and can you give me an example of a time when effective communication was crucial?",
		"communication",
	},
	"communication": {
		"Good to know. Now, let's talk about challenges. What's the biggest challenge you've faced in your career, and how did you overcome it? Please walk me through your thought process.",
		"challenge",
	},
	"challenge": {
		"Thank you for sharing that. Finally, what are your goals for the future? How do you plan to achieve them, and how will this assessment help you?",
		"future",
	},
	"future": {
		"That's wonderful! We've covered a lot of ground in our conversation. Thank you for participating in this assessment. Your detailed analysis is ready.",
		StateCompleted,
	},
}

var singleScript = map[State]step{
	StateGreeting: {
		"Hello! Welcome to the Communication Assessment. In Single Speaker mode, I'll give you a topic and you'll have 2 minutes to speak about it. Let's begin. Your first topic is: Describe your ideal job and why you're interested in it.",
		"topic1",
	},
	"topic1": {
		"Great! Now, let's talk about your educational background. Please describe your educational journey and how it has prepared you for your career goals. Take your time and speak clearly.",
		"topic2",
	},
	"topic2": {
		"Interesting! Now, tell me about a challenge you've faced and how you overcame it. Be specific about the situation and your approach to solving it.",
		"topic3",
	},
	"topic3": {
		"Thank you for sharing that. Finally, what are your goals for the future? Please describe both your short-term and long-term aspirations.",
		"topic4",
	},
	"topic4": {
		"That's wonderful! We've completed the Single Speaker assessment. Your detailed analysis is ready.",
		StateCompleted,
	},
}

const (
	conversationalFollowUp = "That's interesting. Could you tell me more about that? I'd like to understand your perspective better."
	singleFollowUp         = "Please continue speaking about the topic. Try to elaborate on your points and provide specific examples."
)

// Reply returns the bot prompt for a state and the state that follows it.
// States outside the script get a follow-up prompt and do not advance.
func Reply(mode model.Mode, state State) (string, State) {
	script, followUp := conversationalScript, conversationalFollowUp
	if mode == model.ModeSingle {
		script, followUp = singleScript, singleFollowUp
	}
	s, ok := script[state]
	if !ok {
		return followUp, state
	}
	return s.prompt, s.next
}

// Steps returns the number of user answers needed to complete a script.
func Steps(mode model.Mode) int {
	if mode == model.ModeSingle {
		return len(singleScript) - 1
	}
	return len(conversationalScript) - 1
}
