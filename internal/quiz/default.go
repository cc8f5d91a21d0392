package quiz

// DefaultTitle is the title of the built-in bank.
const DefaultTitle = "Pre-Algebra Quiz"

// DefaultBank returns the built-in pre-algebra bank. Each call returns a fresh
// copy so callers cannot mutate shared data.
func DefaultBank() *Bank {
	return &Bank{
		Title: DefaultTitle,
		Questions: []Question{
			{
				Text:          "If a train travels 120 miles in 2 hours, what is its average speed?",
				Options:       []string{"30 mph", "60 mph", "90 mph", "120 mph"},
				CorrectAnswer: "60 mph",
			},
			{
				Text:          "A rectangle has a length that is 3 times its width. If the perimeter is 64 inches, what is the width?",
				Options:       []string{"8 inches", "10 inches", "12 inches", "16 inches"},
				CorrectAnswer: "8 inches",
			},
			{
				Text:          "If 3x + 7 = 22, what is the value of x?",
				Options:       []string{"3", "5", "7", "15"},
				CorrectAnswer: "5",
			},
			{
				Text:          "A book costs $24. If it's discounted by 25%, what is the new price?",
				Options:       []string{"$6", "$18", "$21", "$22"},
				CorrectAnswer: "$18",
			},
			{
				Text:          "If 2/5 of a number is 18, what is the number?",
				Options:       []string{"36", "40", "45", "50"},
				CorrectAnswer: "45",
			},
			{
				Text:          "A recipe calls for 3/4 cup of sugar. If you want to make 1.5 times the recipe, how much sugar do you need?",
				Options:       []string{"1 cup", "1 1/8 cups", "1 1/4 cups", "1 1/2 cups"},
				CorrectAnswer: "1 1/8 cups",
			},
		},
		Examples: []ExampleProblem{
			{
				Question: "If a car travels 80 miles in 2 hours, what is its average speed?",
				Solution: "To find the average speed, divide the distance by time: 80 miles ÷ 2 hours = 40 mph",
			},
			{
				Question: "A rectangle has a length that is 2 times its width. If the perimeter is 48 inches, what is the width?",
				Solution: "1. Let w = width, then length = 2w\n2. Perimeter = 2(length + width)\n3. 48 = 2(2w + w)\n4. 48 = 6w\n5. w = 8 inches",
			},
			{
				Question: "If 2x + 5 = 15, what is the value of x?",
				Solution: "1. Subtract 5 from both sides: 2x = 10\n2. Divide both sides by 2: x = 5",
			},
			{
				Question: "A shirt costs $40. If it's discounted by 25%, what is the new price?",
				Solution: "1. Calculate 25% of $40: $40 × 0.25 = $10\n2. Subtract the discount: $40 - $10 = $30",
			},
			{
				Question: "If 3/4 of a number is 24, what is the number?",
				Solution: "1. Let x be the number\n2. 3/4 × x = 24\n3. x = 24 ÷ (3/4)\n4. x = 24 × (4/3) = 32",
			},
			{
				Question: "A recipe calls for 1/2 cup of flour. If you want to make 1.5 times the recipe, how much flour do you need?",
				Solution: "1. Multiply the amount by 1.5\n2. 1/2 × 1.5 = 3/4 cup",
			},
		},
	}
}
