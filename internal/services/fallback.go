package services

import "strings"

// Static content served whenever the provider is unconfigured, the call
// fails, or its reply is not the JSON we asked for.

const (
	chatUnavailableReply = "AI service is currently unavailable. Please try again later."
	chatErrorReply       = "I'm having trouble responding right now. Please try asking your question again in a moment."
)

func fallbackAssistedLesson(topic string) *AssistedLesson {
	return &AssistedLesson{
		Lesson: "This is a fallback lesson about " + topic + ".",
		Quiz: []QuizItem{
			{
				Q:       "What is " + topic + "?",
				Options: []string{"Option A", "Option B", "Option C", "Option D"},
				Answer:  "Option A",
			},
			{
				Q:       "Why learn " + topic + "?",
				Options: []string{"Reason 1", "Reason 2", "Reason 3", "All"},
				Answer:  "All",
			},
			{
				Q:       "Where is " + topic + " used?",
				Options: []string{"Everywhere", "Nowhere", "Somewhere", "Anywhere"},
				Answer:  "Everywhere",
			},
		},
	}
}

// fallbackSelfStudyLesson returns the pre-written study guide. Arabic gets
// its own variant; every other language value falls through to English.
func fallbackSelfStudyLesson(topic, language string) string {
	if strings.EqualFold(language, "arabic") {
		return strings.ReplaceAll(selfStudyFallbackArabic, "{topic}", topic)
	}
	return strings.ReplaceAll(selfStudyFallbackEnglish, "{topic}", topic)
}

const selfStudyFallbackArabic = `# 🎯 {topic}: دليل شامل للدراسة الذاتية

## 📖 المقدمة
مرحبًا بك في رحلة التعلم الذاتي حول **{topic}**! هذا الدرس مصمم ليكون تفاعليًا وسهل المتابعة.

## 🎓 المفاهيم الأساسية

### 🔍 الفكرة الرئيسية الأولى
- **الشرح**: فهم الأساسيات والمبادئ الرئيسية
- **المثال**: تطبيق عملي يوضح المفهوم
- **💡 نصيحة احترافية**: خذ وقتك في فهم الأساسيات قبل التقدم

### 🔍 الفكرة الرئيسية الثانية
- **الشرح**: كيفية تطبيق هذه المعرفة
- **المثال**: سيناريو من الحياة الواقعية
- **💡 نصيحة احترافية**: تدرب بانتظام لترسيخ المعرفة

## 🛠️ التطبيق العملي

### 🎯 جربها بنفسك
**التمرين**: فكر في كيفية تطبيق {topic} في حياتك اليومية واكتب ثلاثة أمثلة.

### 🌍 مثال من الواقع
كيف يستخدم المحترفون {topic} في مجال العمل؟

## 📊 مرجع سريع
| المفهوم | التعريف | المثال |
|---------|----------|--------|
| الأساسيات | المبادئ الرئيسية | [أمثلة] |
| التطبيق | كيفية الاستخدام | [أمثلة] |

## 🤔 فحص المعرفة

### ❓ أسئلة التفكير
1. ما هو الجانب الأكثر إثارة للاهتمام في {topic}؟
2. كيف يمكنك تطبيق هذا في مشاريعك المستقبلية؟

### 🎯 التقييم الذاتي
- [ ] أفهم المفاهيم الأساسية
- [ ] أستطيع شرحها لشخص آخر
- [ ] أستطيع تطبيقها عمليًا

## 🚀 الخطوات التالية
- ابحث عن مشاريع عملية لتطبيق ما تعلمته
- انضم إلى مجتمعات التعلم ذات الصلة
- واصل التعلم من خلال الموارد الإضافية

*✨ استمر في رحلة التعلم الرائعة!*`

const selfStudyFallbackEnglish = `# 🎯 {topic}: Comprehensive Self-Study Guide

## 📖 Introduction
Welcome to your interactive learning journey about **{topic}**! This lesson is designed to be engaging and practical.

## 🎓 Key Concepts

### 🔍 Core Concept 1
- **Explanation**: Understanding the fundamental principles
- **Example**: Practical application scenario
- **💡 Pro Tip**: Master the basics before advancing

### 🔍 Core Concept 2
- **Explanation**: How to apply this knowledge
- **Example**: Real-world use case
- **💡 Pro Tip**: Practice regularly to reinforce learning

## 🛠️ Practical Application

### 🎯 Try It Yourself
**Exercise**: Think about how you can apply {topic} in your daily life and write down three examples.

### 🌍 Real-World Connection
How do professionals use {topic} in their work?

## 📊 Quick Reference
| Concept | Definition | Example |
|---------|------------|---------|
| Fundamentals | Core principles | [Examples] |
| Application | Practical usage | [Examples] |

## 🤔 Knowledge Check

### ❓ Reflection Questions
1. What's the most interesting aspect of {topic}?
2. How can you apply this to your future projects?

### 🎯 Self-Assessment
- [ ] I understand the basic concepts
- [ ] I can explain it to someone else
- [ ] I can apply it in practice

## 🚀 Next Steps
- Find practical projects to apply your knowledge
- Join relevant learning communities
- Continue learning with additional resources

*✨ Keep up the amazing learning journey!*`

// fallbackTrivia returns the hardcoded five-question set for the two-way
// language switch.
func fallbackTrivia(language string) []QuizItem {
	if strings.EqualFold(language, "arabic") {
		return []QuizItem{
			{
				Q:       "ما هي عاصمة فرنسا؟",
				Options: []string{"لندن", "برلين", "باريس", "مدريد"},
				Answer:  "باريس",
			},
			{
				Q:       "كم عدد الكواكب في نظامنا الشمسي؟",
				Options: []string{"7", "8", "9", "10"},
				Answer:  "8",
			},
			{
				Q:       "ما هو أكبر حيوان ثديي في العالم؟",
				Options: []string{"الفيل", "الحوت الأزرق", "الزرافة", "الدب القطبي"},
				Answer:  "الحوت الأزرق",
			},
			{
				Q:       "في أي سنة انتهت الحرب العالمية الثانية؟",
				Options: []string{"1944", "1945", "1946", "1947"},
				Answer:  "1945",
			},
			{
				Q:       "من رسم لوحة الموناليزا؟",
				Options: []string{"فان جوخ", "بيكاسو", "ليوناردو دافنشي", "مونيه"},
				Answer:  "ليوناردو دافنشي",
			},
		}
	}
	return []QuizItem{
		{
			Q:       "What is the capital of France?",
			Options: []string{"London", "Berlin", "Paris", "Madrid"},
			Answer:  "Paris",
		},
		{
			Q:       "How many planets are in our solar system?",
			Options: []string{"7", "8", "9", "10"},
			Answer:  "8",
		},
		{
			Q:       "What is the largest mammal?",
			Options: []string{"Elephant", "Blue Whale", "Giraffe", "Polar Bear"},
			Answer:  "Blue Whale",
		},
		{
			Q:       "What year did World War II end?",
			Options: []string{"1944", "1945", "1946", "1947"},
			Answer:  "1945",
		},
		{
			Q:       "Who painted the Mona Lisa?",
			Options: []string{"Van Gogh", "Picasso", "Da Vinci", "Monet"},
			Answer:  "Da Vinci",
		},
	}
}
