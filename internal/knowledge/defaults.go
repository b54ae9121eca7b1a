package knowledge

// Defaults returns the built-in knowledge base. It is used whenever no
// knowledge file is configured, and as the base that a loaded file overlays.
func Defaults() *Store {
	return &Store{
		BMIRanges: []BMIRange{
			{Category: "underweight", Lower: 0, Upper: 18.5, Advice: "Increase calorie intake with nutritious foods. Consult a nutritionist."},
			{Category: "normal", Lower: 18.5, Upper: 25, Advice: "Maintain current healthy lifestyle and balanced diet."},
			{Category: "overweight", Lower: 25, Upper: 30, Advice: "Reduce calorie intake, increase physical activity. Consider portion control."},
			{Category: "obese", Lower: 30, Upper: 100, Advice: "Consult healthcare provider. Focus on gradual weight loss through diet and exercise."},
		},
		Water: WaterDefaults{LitersPerKg: 0.033, Min: 2.0, Max: 4.0},
		StepGoals: map[string]int{
			"sedentary":   5000,
			"light":       7500,
			"moderate":    7500,
			"active":      10000,
			"very_active": 12500,
		},
		SleepHours: map[string][2]int{
			"adult":    {7, 9},
			"teenager": {8, 10},
			"child":    {9, 12},
		},
		PregnancyWeeks: defaultPregnancyWeeks(),
		Symptoms:       defaultSymptoms(),
		Corpus:         defaultCorpus(),
	}
}

func defaultPregnancyWeeks() map[int]PregnancyWeek {
	weeks := []PregnancyWeek{
		{Week: 1, BabyDevelopment: "Conception occurs", MotherChanges: "Preparing for pregnancy", Advice: "Start taking folic acid"},
		{Week: 4, BabyDevelopment: "Embryo implants in the uterus", MotherChanges: "Missed period, early fatigue", Advice: "Confirm pregnancy, continue folic acid"},
		{Week: 8, BabyDevelopment: "Size of a raspberry", MotherChanges: "Morning sickness may begin", Advice: "Eat small frequent meals"},
		{Week: 12, BabyDevelopment: "Size of a plum", MotherChanges: "First trimester ending", Advice: "First ultrasound scan"},
		{Week: 16, BabyDevelopment: "Size of an avocado", MotherChanges: "Energy often returns", Advice: "Start gentle prenatal exercise"},
		{Week: 20, BabyDevelopment: "Size of a banana", MotherChanges: "May feel baby movements", Advice: "Midpoint scan, eat iron-rich foods"},
		{Week: 24, BabyDevelopment: "Size of an ear of corn", MotherChanges: "Visible bump, possible back pain", Advice: "Glucose screening, stay hydrated"},
		{Week: 28, BabyDevelopment: "Size of an eggplant", MotherChanges: "Third trimester begins", Advice: "Monitor baby kicks, prepare nursery"},
		{Week: 32, BabyDevelopment: "Practicing breathing movements", MotherChanges: "Shortness of breath, heartburn", Advice: "Sleep on your side, small meals"},
		{Week: 36, BabyDevelopment: "Head may engage in the pelvis", MotherChanges: "Frequent urination returns", Advice: "Weekly checkups begin, pack hospital bag"},
		{Week: 40, BabyDevelopment: "Full term baby", MotherChanges: "Ready for delivery", Advice: "Watch for labor signs, hospital bag ready"},
		{Week: 42, BabyDevelopment: "Post-term, closely monitored", MotherChanges: "Induction may be discussed", Advice: "Follow your provider's monitoring plan"},
	}

	out := make(map[int]PregnancyWeek, len(weeks))
	for _, w := range weeks {
		w.Trimester = TrimesterFor(w.Week)
		out[w.Week] = w
	}
	return out
}

func defaultSymptoms() map[string]Symptom {
	return map[string]Symptom{
		"cramps":            {Phase: "Menstrual", Advice: "Use heating pad, take pain relief, rest", Severity: "moderate"},
		"bloating":          {Phase: "Luteal", Advice: "Reduce salt intake, stay hydrated, gentle exercise", Severity: "mild"},
		"mood swings":       {Phase: "Luteal", Advice: "Practice relaxation techniques, get adequate sleep", Severity: "moderate"},
		"fatigue":           {Phase: "Menstrual", Advice: "Rest well, eat iron-rich foods, stay hydrated", Severity: "moderate"},
		"headache":          {Phase: "Menstrual", Advice: "Stay hydrated, reduce stress, get enough sleep", Severity: "mild"},
		"breast tenderness": {Phase: "Luteal", Advice: "Wear comfortable bra, reduce caffeine", Severity: "mild"},
	}
}

// defaultCorpus is the built-in question/answer corpus for the retrieval
// engine. Order is fixed; the vector space is fitted against it at startup.
func defaultCorpus() []QAEntry {
	return []QAEntry{
		{Question: "How to improve health?", Answer: "To improve health: eat balanced diet, exercise regularly, get 7-8 hours sleep, stay hydrated, manage stress, and have regular checkups.", Category: "general"},
		{Question: "Tips for healthy lifestyle?", Answer: "Healthy lifestyle tips: nutritious meals, exercise daily 30+ mins, sleep 7-8 hours, drink plenty of water, manage stress, avoid smoking, limit alcohol.", Category: "general"},
		{Question: "How to stay healthy?", Answer: "Stay healthy: eat whole foods, move your body daily, prioritize sleep, hydrate well, manage stress, and keep up regular health screenings.", Category: "general"},
		{Question: "Daily health routine?", Answer: "Daily health routine: wake early, drink water, exercise 30 mins, healthy breakfast, balanced lunch, evening walk, nutritious dinner, sleep by 10-11 PM.", Category: "general"},
		{Question: "Healthy habits?", Answer: "Healthy habits: regular exercise, balanced nutrition, adequate sleep, stress management, hydration, no smoking, limited alcohol.", Category: "general"},
		{Question: "What foods are good for heart?", Answer: "Heart-healthy foods include: salmon, walnuts, berries, oats, dark chocolate, leafy greens, avocado, and olive oil.", Category: "nutrition"},
		{Question: "What is a balanced diet?", Answer: "A balanced diet includes all food groups: lean proteins, whole grains, fruits, vegetables, and healthy fats in sensible portions.", Category: "nutrition"},
		{Question: "How much protein do I need?", Answer: "Aim for 0.8-1g of protein per kg of body weight daily. Good sources: chicken, fish, eggs, dal, paneer, tofu, and legumes.", Category: "nutrition"},
		{Question: "What should I eat to lose weight?", Answer: "For weight loss focus on: lean proteins, whole grains, fruits, vegetables, healthy fats. Avoid: fried foods, sweets, soda, white bread and rice.", Category: "nutrition"},
		{Question: "How much water should I drink daily?", Answer: "Adults should drink 2-3 liters (8-10 glasses) of water daily. More if exercising or in hot weather.", Category: "hydration"},
		{Question: "Water intake per day?", Answer: "Water intake: 2.5-3 liters per day for adults. More during exercise. Divide weight(kg) by 30 for a personalized amount in liters.", Category: "hydration"},
		{Question: "Hydration tips?", Answer: "Hydration tips: drink water upon waking, before meals, carry a water bottle, eat water-rich fruits, monitor urine color (pale yellow is good).", Category: "hydration"},
		{Question: "What is a healthy BMI range?", Answer: "Healthy BMI range is 18.5-24.9. Below 18.5 is underweight, 25-29.9 is overweight, 30+ is obese.", Category: "bmi"},
		{Question: "What is normal BMI?", Answer: "Normal BMI: 18.5-24.9 is healthy. Below 18.5 is underweight, 25-29.9 overweight, 30+ obese. Maintain a healthy weight through diet and exercise.", Category: "bmi"},
		{Question: "How to calculate BMI?", Answer: "Calculate BMI: divide your weight in kg by your height in meters squared. Example: 70kg / (1.75m)^2 = 22.9 (normal).", Category: "bmi"},
		{Question: "Ideal body weight?", Answer: "Ideal body weight depends on height. For 170cm: 58-72kg (BMI 18.5-24.9). Use a BMI calculator for your height.", Category: "bmi"},
		{Question: "How to reduce blood pressure?", Answer: "Reduce BP by: limiting salt, exercising regularly, maintaining healthy weight, limiting alcohol, managing stress, eating potassium-rich foods.", Category: "blood_pressure"},
		{Question: "Normal blood pressure?", Answer: "Normal blood pressure: 120/80 mmHg or lower. 120-129/<80 is elevated. 130-139/80-89 is stage 1 hypertension. Monitor regularly.", Category: "blood_pressure"},
		{Question: "High BP treatment?", Answer: "High BP treatment: reduce salt, exercise 150 mins/week, lose weight, limit alcohol, manage stress, eat the DASH diet, medication if prescribed.", Category: "blood_pressure"},
		{Question: "What are symptoms of diabetes?", Answer: "Diabetes symptoms: increased thirst, frequent urination, extreme hunger, unexplained weight loss, fatigue, blurred vision, slow-healing sores.", Category: "diabetes"},
		{Question: "Diabetes prevention?", Answer: "Diabetes prevention: maintain healthy weight, exercise regularly, eat whole grains and vegetables, limit sugar, avoid processed foods, regular checkups.", Category: "diabetes"},
		{Question: "What is healthy blood sugar level?", Answer: "Normal fasting blood sugar: 70-100 mg/dL. Prediabetes: 100-125. Diabetes: 126+. After meals: below 140 mg/dL is normal.", Category: "diabetes"},
		{Question: "Best exercises for weight loss?", Answer: "Best exercises for weight loss: running, cycling, swimming, HIIT workouts, strength training, and walking 10,000+ steps daily.", Category: "fitness"},
		{Question: "Which exercise is better for me?", Answer: "For beginners: walking and bodyweight exercises. For weight loss: HIIT and running. For muscle: strength training. Mix types for best results.", Category: "fitness"},
		{Question: "How to start exercising?", Answer: "Starting plan: weeks 1-2 walk 15-20 mins daily, weeks 3-4 add light jogging, weeks 5-6 add squats, push-ups and planks. Start slow, rest days matter.", Category: "fitness"},
		{Question: "Cardio or strength training?", Answer: "Cardio burns calories and improves heart health; strength training builds muscle and boosts metabolism. Best approach: 3x cardio + 2x strength per week.", Category: "fitness"},
		{Question: "How long should I exercise?", Answer: "Minimum for health: 150 mins of moderate exercise per week (30 mins x 5 days). For weight loss aim for 300+ mins weekly.", Category: "fitness"},
		{Question: "How many steps per day?", Answer: "Daily steps: minimum 5,000, good 7,000-8,000, optimal 10,000. Take stairs, walk during calls, walk after meals.", Category: "fitness"},
		{Question: "Is 10000 steps necessary?", Answer: "10,000 steps is a popular goal, but research shows 7,000-8,000 steps already provides significant health benefits. More is better, not mandatory.", Category: "fitness"},
		{Question: "Walking benefits?", Answer: "Walking improves heart health, burns 150-300 calories/hour, reduces stress, strengthens bones, and is easy on joints. 30 minutes daily makes a difference.", Category: "fitness"},
		{Question: "Period tips?", Answer: "Period tips: heat therapy on the abdomen, gentle exercise, iron-rich foods (spinach, lentils, dates), stay hydrated, avoid excess caffeine and salt.", Category: "womens_health"},
		{Question: "How to reduce period pain?", Answer: "Period pain relief: heating pad 15-20 mins, ibuprofen or naproxen, gentle yoga, ginger tea, stay hydrated. See a doctor if pain is severe.", Category: "womens_health"},
		{Question: "Period irregularity?", Answer: "Period irregularity causes: stress, PCOS, thyroid issues, weight changes. Track your cycle and see a gynecologist if persistently irregular.", Category: "womens_health"},
		{Question: "What to eat during periods?", Answer: "Foods during periods: iron-rich (spinach, lentils, dates), omega-3 (fish, walnuts), bananas, dark chocolate, ginger tea. Avoid excess caffeine and salt.", Category: "womens_health"},
		{Question: "Exercise during menstruation?", Answer: "Yes, light exercise during periods helps. Walking, gentle yoga and stretching reduce cramps. Avoid intense workouts if feeling weak.", Category: "womens_health"},
		{Question: "PMS symptoms?", Answer: "PMS symptoms: mood swings, bloating, fatigue, cramps, cravings. Manage with exercise, balanced diet, adequate sleep, stress management, hydration.", Category: "womens_health"},
		{Question: "What is normal heart rate?", Answer: "Normal resting heart rate: 60-100 bpm for adults. Athletes may have 40-60 bpm. Check your pulse regularly.", Category: "heart"},
		{Question: "Heart healthy habits?", Answer: "Heart healthy habits: exercise regularly, eat fish, nuts and vegetables, maintain healthy weight, don't smoke, limit alcohol, manage stress.", Category: "heart"},
		{Question: "How to improve immunity?", Answer: "Boost immunity: eat fruits and vegetables, exercise regularly, sleep 7-8 hours, manage stress, stay hydrated, avoid smoking, maintain hygiene.", Category: "immunity"},
		{Question: "Immunity foods?", Answer: "Immunity foods: citrus fruits, garlic, ginger, turmeric, yogurt, spinach, almonds, green tea, mushrooms. Eat a colorful variety.", Category: "immunity"},
		{Question: "How to reduce stress?", Answer: "Reduce stress: regular exercise, meditation, deep breathing, adequate sleep, healthy diet, social connections, hobbies, professional help if needed.", Category: "mental_health"},
		{Question: "Anxiety relief?", Answer: "Anxiety relief: deep breathing exercises, progressive muscle relaxation, physical activity, limit caffeine, adequate sleep, talk therapy, mindfulness.", Category: "mental_health"},
		{Question: "How much sleep needed?", Answer: "Adults need 7-9 hours of sleep nightly. Teenagers: 8-10 hours. Keep a consistent schedule, dark room, no screens before bed.", Category: "sleep"},
		{Question: "Better sleep tips?", Answer: "Better sleep: consistent schedule, cool dark room, avoid screens 1 hour before bed, limit caffeine, exercise earlier in the day, relaxing routine.", Category: "sleep"},
		{Question: "Insomnia cure?", Answer: "For insomnia: regular sleep schedule, relaxing bedtime routine, avoid screens, limit caffeine and alcohol, exercise earlier in the day. See a doctor if persistent.", Category: "sleep"},
	}
}
