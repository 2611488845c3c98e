package dialogue

import (
	"fmt"

	"github.com/wellbotdev/wellbot/internal/kb"
)

// Reply templates per language. Variant lists are chosen from at random;
// single strings are fixed. All text is carried verbatim so replies stay
// byte-compatible with existing chat logs.

var greetings = map[kb.Language][]string{
	kb.English: {
		"Hello! How are you feeling today?",
		"Hi there! Tell me your symptoms.",
		"Hey! How can I help you today?",
	},
	kb.Hindi: {
		"नमस्ते! आज आप कैसा महसूस कर रहे हैं?",
		"हाय! मुझे अपने लक्षण बताएं।",
		"नमस्ते! आज मैं आपकी कैसे मदद कर सकता हूं?",
	},
	kb.Telugu: {
		"హలో! మీరు ఈరోజు ఎలా భావిస్తున్నారు?",
		"హాయ్! మీ లక్షణాలు చెప్పండి.",
		"హే! నేను ఈరోజు మీకు ఎలా సహాయపడగలను?",
	},
}

var goodbyes = map[kb.Language][]string{
	kb.English: {
		"Goodbye! Take care!",
		"See you soon — stay safe!",
		"Bye! Wishing you good health.",
	},
	kb.Hindi: {
		"अलविदा! अपना ख्याल रखना!",
		"जल्द मिलते हैं - सुरक्षित रहें!",
		"अलविदा! आपके अच्छे स्वास्थ्य की कामना करता हूं।",
	},
	kb.Telugu: {
		"వీడ్కోలు! జాగ్రత్తగా ఉండండి!",
		"త్వరలో కలుద్దాం - సురక్షితంగా ఉండండి!",
		"బై! మీ మంచి ఆరోగ్యానికి శుభాకాంక్షలు.",
	},
}

var moreSymptoms = map[kb.Language][]string{
	kb.English: {
		"Can you tell me more symptoms?",
		"Any other symptoms?",
		"What else do you feel?",
	},
	kb.Hindi: {
		"क्या आप और लक्षण बता सकते हैं?",
		"कोई अन्य लक्षण?",
		"आप और क्या महसूस कर रहे हैं?",
	},
	kb.Telugu: {
		"మీరు మరిన్ని లక్షణాలు చెప్పగలరా?",
		"ఇతర లక్షణాలు ఏమైనా ఉన్నాయా?",
		"మీరు మరేమి అనుభవిస్తున్నారు?",
	},
}

var disclaimer = map[kb.Language]string{
	kb.English: "Note: I'm not a medical professional. I can suggest possible conditions based on symptoms, but please consult a healthcare provider for a proper diagnosis.",
	kb.Hindi:   "नोट: मैं एक चिकित्सा पेशेवर नहीं हूं। मैं लक्षणों के आधार पर संभावित स्थितियों का सुझाव दे सकता हूं, लेकिन कृपया उचित निदान के लिए स्वास्थ्य सेवा प्रदाता से सलाह लें।",
	kb.Telugu:  "గమనిక: నేను వైద్య పరిజ్ఞానం కలిగిన వ్యక్తి కాదు. నేను లక్షణాల ఆధారంగా సంభావ్య పరిస్థితులను సూచించగలను, కానీ దయచేసి సరైన నిర్ధారణ కోసం హెల్త్కేర్ ప్రొవైడర్ను సంప్రదించండి.",
}

var notEnoughSymptoms = map[kb.Language]string{
	kb.English: "I don't have enough symptoms yet. Please tell me what you're feeling.",
	kb.Hindi:   "मेरे पास अभी तक पर्याप्त लक्षण नहीं हैं। कृपया मुझे बताएं कि आप क्या महसूस कर रहे हैं।",
	kb.Telugu:  "నా వద్ద ఇంకా తగినంత లక్షణాలు లేవు. దయచేసి మీరు ఏమి అనుభవిస్తున్నారో చెప్పండి.",
}

var needMoreSymptoms = map[kb.Language]string{
	kb.English: "I need a few more symptoms to make a suggestion.",
	kb.Hindi:   "मुझे सुझाव देने के लिए कुछ और लक्षण चाहिए।",
	kb.Telugu:  "సూచించడానికి మరికొన్ని లక్షణాలు అవసరం.",
}

var needMoreInfo = map[kb.Language]string{
	kb.English: "I need a bit more information. ",
	kb.Hindi:   "मुझे थोड़ी और जानकारी चाहिए। ",
	kb.Telugu:  "కొంచెం మరింత సమాచారం కావాలి. ",
}

var possibleConditions = map[kb.Language]string{
	kb.English: "Possible conditions: ",
	kb.Hindi:   "संभावित स्थितियां: ",
	kb.Telugu:  "సాధ్యమయ్యే పరిస్థితులు: ",
}

// suggestSymptom localizes "Do you also have X?". The symptom phrase is
// inserted verbatim, never translated.
func suggestSymptom(lang kb.Language, symptom string) string {
	switch lang {
	case kb.Hindi:
		return fmt.Sprintf("क्या आपको %s भी है?", symptom)
	case kb.Telugu:
		return fmt.Sprintf("మీకు %s కూడా ఉందా?", symptom)
	default:
		return fmt.Sprintf("Do you also have %s?", symptom)
	}
}

func fixed(templates map[kb.Language]string, lang kb.Language) string {
	if s, ok := templates[lang]; ok {
		return s
	}
	return templates[kb.English]
}

func variants(templates map[kb.Language][]string, lang kb.Language) []string {
	if v, ok := templates[lang]; ok {
		return v
	}
	return templates[kb.English]
}
