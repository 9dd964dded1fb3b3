package lang

// Message keys used by the dialogue engine and the answering pipeline.
const (
	MsgWelcome          = "welcome"
	MsgRegistrationInfo = "registration_info"
	MsgFeedbackQuestion = "feedback_question"
	MsgRatingRequest    = "rating_request"
	MsgRatingInvalid    = "rating_invalid"
	MsgRatingThanks     = "rating_thanks"
	MsgGoodbye          = "goodbye"
	MsgAskIdentifier    = "ask_identifier"
	MsgBadIdentifier    = "bad_identifier"
	MsgStatusNotFound   = "status_not_found"
	MsgUnsupportedLang  = "unsupported_language"
	MsgRateWait         = "rate_wait"
	MsgEmptyInput       = "empty_input"
	MsgKBRefusal        = "kb_refusal"
	MsgTimeout          = "timeout_fallback"
	MsgConnection       = "connection_fallback"
	MsgTooComplex       = "too_complex"
	MsgGenericError     = "generic_error"
	MsgLangFallback     = "language_fallback"
	MsgSchemesIntro     = "schemes_intro"
	MsgGreetingMorning  = "greeting_morning"
	MsgGreetingDay      = "greeting_day"
	MsgGreetingEvening  = "greeting_evening"
	MsgGreetingHello    = "greeting_hello"
)

var messages = map[string]map[string]string{
	MsgWelcome: {
		English: "Welcome! I am Jal Mitra, your water grievance assistant. Would you like to register a water supply grievance? Please reply yes or no.",
		Hindi:   "नमस्ते! मैं जल मित्र हूँ, आपकी जल शिकायत सहायक। क्या आप जल आपूर्ति संबंधी शिकायत दर्ज करना चाहते हैं? कृपया हाँ या नहीं में उत्तर दें।",
		Marathi: "नमस्कार! मी जल मित्र आहे, तुमचा पाणी तक्रार सहाय्यक. तुम्हाला पाणी पुरवठ्याची तक्रार नोंदवायची आहे का? कृपया होय किंवा नाही असे उत्तर द्या.",
	},
	MsgRegistrationInfo: {
		English: "You can register your grievance in two ways: 1) Online on the public grievance portal of your water supply department. 2) By calling the toll-free 104/102 helpline numbers. Keep your village and mobile number ready.",
		Hindi:   "आप अपनी शिकायत दो तरीकों से दर्ज कर सकते हैं: 1) जल आपूर्ति विभाग के सार्वजनिक शिकायत पोर्टल पर ऑनलाइन। 2) टोल-फ्री 104/102 हेल्पलाइन नंबर पर कॉल करके। अपना गाँव और मोबाइल नंबर तैयार रखें।",
		Marathi: "तुम्ही तुमची तक्रार दोन प्रकारे नोंदवू शकता: 1) पाणी पुरवठा विभागाच्या सार्वजनिक तक्रार पोर्टलवर ऑनलाइन. 2) टोल-फ्री 104/102 हेल्पलाइन क्रमांकावर कॉल करून. तुमचे गाव आणि मोबाईल क्रमांक तयार ठेवा.",
	},
	MsgFeedbackQuestion: {
		English: "Would you like to share feedback about this service? Please reply yes or no.",
		Hindi:   "क्या आप इस सेवा के बारे में प्रतिक्रिया देना चाहेंगे? कृपया हाँ या नहीं में उत्तर दें।",
		Marathi: "तुम्हाला या सेवेबद्दल अभिप्राय द्यायला आवडेल का? कृपया होय किंवा नाही असे उत्तर द्या.",
	},
	MsgRatingRequest: {
		English: "Thank you! Please rate your experience from 1 (poor) to 5 (excellent).",
		Hindi:   "धन्यवाद! कृपया अपने अनुभव को 1 (खराब) से 5 (उत्कृष्ट) तक रेट करें।",
		Marathi: "धन्यवाद! कृपया तुमच्या अनुभवाला 1 (वाईट) ते 5 (उत्तम) पर्यंत रेटिंग द्या.",
	},
	MsgRatingInvalid: {
		English: "Please enter a rating between 1 and 5.",
		Hindi:   "कृपया 1 से 5 के बीच रेटिंग दर्ज करें।",
		Marathi: "कृपया 1 ते 5 दरम्यान रेटिंग द्या.",
	},
	MsgRatingThanks: {
		English: "Thank you for your rating! Feel free to ask me anything else about water supply schemes and grievances.",
		Hindi:   "आपकी रेटिंग के लिए धन्यवाद! जल आपूर्ति योजनाओं और शिकायतों के बारे में कुछ भी पूछ सकते हैं।",
		Marathi: "तुमच्या रेटिंगबद्दल धन्यवाद! पाणी पुरवठा योजना आणि तक्रारींबद्दल काहीही विचारू शकता.",
	},
	MsgGoodbye: {
		English: "Alright. If you need help later, just send a message. For urgent matters call the 104/102 helpline numbers.",
		Hindi:   "ठीक है। बाद में मदद चाहिए तो संदेश भेजें। तत्काल सहायता के लिए 104/102 हेल्पलाइन नंबर पर कॉल करें।",
		Marathi: "ठीक आहे. नंतर मदत हवी असल्यास संदेश पाठवा. तातडीच्या मदतीसाठी 104/102 हेल्पलाइन क्रमांकावर कॉल करा.",
	},
	MsgAskIdentifier: {
		English: "Please share your grievance ID or the 10-digit mobile number used while registering.",
		Hindi:   "कृपया अपनी शिकायत आईडी या पंजीकरण के समय उपयोग किया गया 10 अंकों का मोबाइल नंबर बताएं।",
		Marathi: "कृपया तुमचा तक्रार आयडी किंवा नोंदणीच्या वेळी वापरलेला 10 अंकी मोबाईल क्रमांक सांगा.",
	},
	MsgBadIdentifier: {
		English: "That does not look like a valid grievance ID or mobile number. Please check and share it again.",
		Hindi:   "यह मान्य शिकायत आईडी या मोबाइल नंबर नहीं लगता। कृपया जाँच कर फिर से भेजें।",
		Marathi: "हा वैध तक्रार आयडी किंवा मोबाईल क्रमांक वाटत नाही. कृपया तपासून पुन्हा पाठवा.",
	},
	MsgStatusNotFound: {
		English: "I could not find a grievance for that identifier. Please verify it, or call the 104/102 helpline numbers.",
		Hindi:   "इस पहचान के लिए कोई शिकायत नहीं मिली। कृपया जाँच करें, या 104/102 हेल्पलाइन नंबर पर कॉल करें।",
		Marathi: "या ओळखीसाठी कोणतीही तक्रार सापडली नाही. कृपया तपासा, किंवा 104/102 हेल्पलाइन क्रमांकावर कॉल करा.",
	},
	MsgUnsupportedLang: {
		English: "I can help in English, Hindi and Marathi. Please continue in one of these languages.",
		Hindi:   "मैं अंग्रेज़ी, हिंदी और मराठी में मदद कर सकती हूँ। कृपया इनमें से किसी एक भाषा में जारी रखें।",
		Marathi: "मी इंग्रजी, हिंदी आणि मराठीत मदत करू शकते. कृपया यापैकी एका भाषेत सुरू ठेवा.",
	},
	MsgRateWait: {
		English: "Unable to answer right now, please try again after sometime. For more details, please contact the 104/102 helpline numbers.",
		Hindi:   "अभी उत्तर देना संभव नहीं है, कृपया कुछ समय बाद पुनः प्रयास करें। अधिक जानकारी के लिए कृपया 104/102 हेल्पलाइन संपर्क करें।",
		Marathi: "सध्या उत्तर देणे शक्य नाही, कृपया थोड्या वेळाने पुन्हा प्रयत्न करा. अधिक माहितीसाठी कृपया 104/102 हेल्पलाइन संपर्क साधा.",
	},
	MsgEmptyInput: {
		English: "Please type your question or reply.",
		Hindi:   "कृपया अपना प्रश्न या उत्तर लिखें।",
		Marathi: "कृपया तुमचा प्रश्न किंवा उत्तर लिहा.",
	},
	MsgKBRefusal: {
		English: "Based on the available documents, I couldn't find specific information about that. Please try asking about government schemes, eligibility criteria, or application processes.",
		Hindi:   "उपलब्ध दस्तावेज़ों के आधार पर, मुझे इस बारे में विशिष्ट जानकारी नहीं मिली। कृपया सरकारी योजनाओं, पात्रता मापदंड, या आवेदन प्रक्रियाओं के बारे में पूछें।",
		Marathi: "उपलब्ध दस्तावेजांच्या आधारे, मला याबद्दल विशिष्ट माहिती सापडली नाही। कृपया सरकारी योजना, पात्रता निकष, किंवा अर्ज प्रक्रियेबद्दल विचारा।",
	},
	MsgTimeout: {
		English: "The answer is taking too long. Please try a shorter question, or contact the 104/102 helpline numbers.",
		Hindi:   "उत्तर में बहुत समय लग रहा है। कृपया छोटा प्रश्न पूछें, या 104/102 हेल्पलाइन नंबर पर संपर्क करें।",
		Marathi: "उत्तराला खूप वेळ लागत आहे. कृपया लहान प्रश्न विचारा, किंवा 104/102 हेल्पलाइन क्रमांकावर संपर्क साधा.",
	},
	MsgConnection: {
		English: "The service is temporarily unavailable. Please try again after sometime, or contact the 104/102 helpline numbers.",
		Hindi:   "सेवा अस्थायी रूप से अनुपलब्ध है। कृपया कुछ समय बाद पुनः प्रयास करें, या 104/102 हेल्पलाइन नंबर पर संपर्क करें।",
		Marathi: "सेवा तात्पुरती अनुपलब्ध आहे. कृपया थोड्या वेळाने पुन्हा प्रयत्न करा, किंवा 104/102 हेल्पलाइन क्रमांकावर संपर्क साधा.",
	},
	MsgTooComplex: {
		English: "Query too complex. Please ask about specific schemes.",
		Hindi:   "प्रश्न बहुत जटिल है। कृपया विशिष्ट योजनाओं के बारे में पूछें।",
		Marathi: "प्रश्न खूप जटिल आहे. कृपया विशिष्ट योजनांबद्दल विचारा.",
	},
	MsgGenericError: {
		English: "Something went wrong while preparing the answer. Please try again, or contact the 104/102 helpline numbers.",
		Hindi:   "उत्तर तैयार करते समय कुछ गलत हो गया। कृपया पुनः प्रयास करें, या 104/102 हेल्पलाइन नंबर पर संपर्क करें।",
		Marathi: "उत्तर तयार करताना काहीतरी चूक झाली. कृपया पुन्हा प्रयत्न करा, किंवा 104/102 हेल्पलाइन क्रमांकावर संपर्क साधा.",
	},
	MsgLangFallback: {
		English: "Please contact 104/102 helpline for more information.",
		Hindi:   "अधिक जानकारी के लिए कृपया 104/102 हेल्पलाइन संपर्क करें।",
		Marathi: "अधिक माहितीसाठी कृपया 104/102 हेल्पलाइन संपर्क साधा।",
	},
	MsgSchemesIntro: {
		English: "Here are the water supply schemes I know about:",
		Hindi:   "मुझे ज्ञात जल आपूर्ति योजनाएं ये हैं:",
		Marathi: "मला माहीत असलेल्या पाणी पुरवठा योजना या आहेत:",
	},
	MsgGreetingMorning: {
		English: "Good morning! How can I help you with water supply schemes or grievances today?",
		Hindi:   "सुप्रभात! आज जल आपूर्ति योजनाओं या शिकायतों में कैसे मदद करूँ?",
		Marathi: "सुप्रभात! आज पाणी पुरवठा योजना किंवा तक्रारींमध्ये कशी मदत करू?",
	},
	MsgGreetingDay: {
		English: "Good afternoon! How can I help you with water supply schemes or grievances?",
		Hindi:   "नमस्ते! जल आपूर्ति योजनाओं या शिकायतों में कैसे मदद करूँ?",
		Marathi: "नमस्कार! पाणी पुरवठा योजना किंवा तक्रारींमध्ये कशी मदत करू?",
	},
	MsgGreetingEvening: {
		English: "Good evening! How can I help you with water supply schemes or grievances?",
		Hindi:   "शुभ संध्या! जल आपूर्ति योजनाओं या शिकायतों में कैसे मदद करूँ?",
		Marathi: "शुभ संध्याकाळ! पाणी पुरवठा योजना किंवा तक्रारींमध्ये कशी मदत करू?",
	},
	MsgGreetingHello: {
		English: "Hello! Ask me about water supply schemes, or say 'check grievance status' to track a complaint.",
		Hindi:   "नमस्ते! जल आपूर्ति योजनाओं के बारे में पूछें, या शिकायत ट्रैक करने के लिए 'शिकायत की स्थिति' लिखें।",
		Marathi: "नमस्कार! पाणी पुरवठा योजनांबद्दल विचारा, किंवा तक्रार ट्रॅक करण्यासाठी 'तक्रारीची स्थिती' लिहा.",
	},
}

// Message returns the fixed text for key in the given language, falling
// back to English when either is unknown.
func Message(key, language string) string {
	table, ok := messages[key]
	if !ok {
		return ""
	}
	if s, ok := table[language]; ok {
		return s
	}
	return table[English]
}

// SuggestedQuestions returns starter questions shown by the UI, in the
// given language. The status question doubles as the status-check intent
// trigger phrase.
func SuggestedQuestions(language string) []string {
	switch language {
	case Hindi:
		return []string{
			"जल जीवन मिशन क्या है?",
			"सभी योजनाएं बताइए",
			"मेरी शिकायत की स्थिति जांचें",
		}
	case Marathi:
		return []string{
			"जल जीवन मिशन काय आहे?",
			"सर्व योजना सांगा",
			"माझ्या तक्रारीची स्थिती तपासा",
		}
	default:
		return []string{
			"What is the Jal Jeevan Mission?",
			"List all water supply schemes",
			"Check my grievance status",
		}
	}
}
