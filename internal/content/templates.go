package content

// DefaultLanguage is the hard fallback. The English table is complete by
// construction and acts as the schema: the set of valid (section, key) pairs
// is exactly what English defines.
const DefaultLanguage = "english"

// SectionTable maps section -> key -> display string for one language.
type SectionTable map[string]map[string]string

// templates holds the per-language default text, loaded once at process
// start and never mutated. Non-English tables may be partial; gaps resolve
// through the English fallback.
var templates = map[string]SectionTable{
	"english": {
		"opening": {
			"title":           "Wedding Invitation",
			"subtitle":        "Together with their families",
			"date_label":      "Save the Date",
			"countdown_label": "Days to go",
		},
		"welcome": {
			"title":    "Welcome",
			"message":  "With hearts full of joy, we invite you to celebrate with us",
			"blessing": "With the blessings of our families",
		},
		"couple": {
			"title":       "The Happy Couple",
			"groom_label": "The Groom",
			"bride_label": "The Bride",
			"and_label":   "weds",
		},
		"photos": {
			"title":    "Our Moments",
			"subtitle": "A glimpse of our journey",
		},
		"video": {
			"title":    "Our Story",
			"subtitle": "Relive the moments with us",
		},
		"events": {
			"title":            "Celebrations",
			"venue_label":      "Venue",
			"date_label":       "Date",
			"time_label":       "Time",
			"directions_label": "Get Directions",
		},
		"greetings": {
			"title":         "Wishes & Blessings",
			"subtitle":      "Leave your wishes for the couple",
			"name_label":    "Your Name",
			"message_label": "Your Message",
			"submit":        "Send Wishes",
			"thank_you":     "Thank you for your wishes!",
			"empty":         "Be the first to send your wishes",
		},
		"rsvp": {
			"title":             "RSVP",
			"subtitle":          "Kindly confirm your presence",
			"name_label":        "Your Name",
			"phone_label":       "Phone Number",
			"attending_yes":     "Joyfully Accepts",
			"attending_no":      "Regretfully Declines",
			"attending_maybe":   "Will Try to Attend",
			"guest_count_label": "Number of Guests",
			"message_label":     "Message (optional)",
			"submit":            "Confirm RSVP",
			"thank_you":         "Thank you for your response!",
			"already_submitted": "You have already responded",
		},
		"footer": {
			"thank_you": "We look forward to celebrating with you",
			"blessing":  "Your presence is our blessing",
		},
	},
	"telugu": {
		"opening": {
			"title":           "వివాహ ఆహ్వానం",
			"subtitle":        "మా కుటుంబాలతో కలిసి",
			"date_label":      "తేదీని గుర్తుంచుకోండి",
			"countdown_label": "ఇంకా రోజులు",
		},
		"welcome": {
			"title":    "స్వాగతం",
			"message":  "ఆనందంతో నిండిన హృదయాలతో, మాతో కలిసి వేడుక జరుపుకోవాలని మిమ్మల్ని ఆహ్వానిస్తున్నాము",
			"blessing": "మా కుటుంబాల ఆశీస్సులతో",
		},
		"couple": {
			"title":       "వధూవరులు",
			"groom_label": "వరుడు",
			"bride_label": "వధువు",
			"and_label":   "మరియు",
		},
		"photos": {
			"title":    "మా జ్ఞాపకాలు",
			"subtitle": "మా ప్రయాణపు మధుర క్షణాలు",
		},
		"video": {
			"title": "మా కథ",
		},
		"events": {
			"title":            "వేడుకలు",
			"venue_label":      "వేదిక",
			"date_label":       "తేదీ",
			"time_label":       "సమయం",
			"directions_label": "దారి చూపించు",
		},
		"greetings": {
			"title":         "శుభాకాంక్షలు",
			"subtitle":      "వధూవరులకు మీ శుభాకాంక్షలు తెలియజేయండి",
			"name_label":    "మీ పేరు",
			"message_label": "మీ సందేశం",
			"submit":        "శుభాకాంక్షలు పంపండి",
			"thank_you":     "మీ శుభాకాంక్షలకు ధన్యవాదాలు!",
			"empty":         "మొదటి శుభాకాంక్షను మీరే పంపండి",
		},
		"rsvp": {
			"title":             "హాజరు నిర్ధారణ",
			"subtitle":          "దయచేసి మీ హాజరును నిర్ధారించండి",
			"name_label":        "మీ పేరు",
			"phone_label":       "ఫోన్ నంబర్",
			"attending_yes":     "తప్పకుండా వస్తాము",
			"attending_no":      "రాలేకపోతున్నాము",
			"attending_maybe":   "ప్రయత్నిస్తాము",
			"guest_count_label": "అతిథుల సంఖ్య",
			"message_label":     "సందేశం (ఐచ్ఛికం)",
			"submit":            "నిర్ధారించండి",
			"thank_you":         "మీ స్పందనకు ధన్యవాదాలు!",
			"already_submitted": "మీరు ఇప్పటికే స్పందించారు",
		},
		"footer": {
			"thank_you": "మీతో కలిసి వేడుక జరుపుకోవాలని ఎదురుచూస్తున్నాము",
			"blessing":  "మీ రాక మాకు ఆశీర్వాదం",
		},
	},
	"hindi": {
		"opening": {
			"title":           "विवाह निमंत्रण",
			"subtitle":        "हमारे परिवारों के साथ",
			"date_label":      "तिथि याद रखें",
			"countdown_label": "शेष दिन",
		},
		"welcome": {
			"title":    "स्वागत है",
			"message":  "खुशी से भरे दिलों के साथ, हम आपको हमारे साथ उत्सव मनाने के लिए आमंत्रित करते हैं",
			"blessing": "हमारे परिवारों के आशीर्वाद से",
		},
		"couple": {
			"title":       "वर-वधू",
			"groom_label": "वर",
			"bride_label": "वधू",
			"and_label":   "संग",
		},
		"photos": {
			"title":    "हमारी यादें",
			"subtitle": "हमारे सफ़र की एक झलक",
		},
		"video": {
			"title": "हमारी कहानी",
		},
		"events": {
			"title":            "समारोह",
			"venue_label":      "स्थान",
			"date_label":       "तिथि",
			"time_label":       "समय",
			"directions_label": "रास्ता देखें",
		},
		"greetings": {
			"title":         "शुभकामनाएँ",
			"subtitle":      "वर-वधू के लिए अपनी शुभकामनाएँ भेजें",
			"name_label":    "आपका नाम",
			"message_label": "आपका संदेश",
			"submit":        "शुभकामनाएँ भेजें",
			"thank_you":     "आपकी शुभकामनाओं के लिए धन्यवाद!",
			"empty":         "सबसे पहले शुभकामनाएँ आप ही भेजें",
		},
		"rsvp": {
			"title":             "उपस्थिति की पुष्टि",
			"subtitle":          "कृपया अपनी उपस्थिति की पुष्टि करें",
			"name_label":        "आपका नाम",
			"phone_label":       "फ़ोन नंबर",
			"attending_yes":     "हम अवश्य आएँगे",
			"attending_no":      "हम नहीं आ पाएँगे",
			"attending_maybe":   "हम प्रयास करेंगे",
			"guest_count_label": "अतिथियों की संख्या",
			"message_label":     "संदेश (वैकल्पिक)",
			"submit":            "पुष्टि करें",
			"thank_you":         "आपके उत्तर के लिए धन्यवाद!",
			"already_submitted": "आप पहले ही उत्तर दे चुके हैं",
		},
		"footer": {
			"thank_you": "हम आपके साथ उत्सव मनाने की प्रतीक्षा कर रहे हैं",
			"blessing":  "आपका आगमन ही हमारा आशीर्वाद है",
		},
	},
	// The remaining tables are intentionally partial; English fills the gaps.
	"tamil": {
		"opening": {
			"title":      "திருமண அழைப்பிதழ்",
			"subtitle":   "எங்கள் குடும்பங்களுடன் இணைந்து",
			"date_label": "நாளைக் குறித்துக்கொள்ளுங்கள்",
		},
		"welcome": {
			"title":   "வரவேற்கிறோம்",
			"message": "மகிழ்ச்சி நிறைந்த இதயங்களுடன், எங்களுடன் கொண்டாட உங்களை அழைக்கிறோம்",
		},
		"couple": {
			"title":       "மணமக்கள்",
			"groom_label": "மணமகன்",
			"bride_label": "மணமகள்",
		},
		"events": {
			"title":       "விழாக்கள்",
			"venue_label": "இடம்",
			"date_label":  "தேதி",
			"time_label":  "நேரம்",
		},
		"greetings": {
			"title":  "வாழ்த்துகள்",
			"submit": "வாழ்த்துகளை அனுப்புங்கள்",
		},
		"rsvp": {
			"title":           "வருகை உறுதி",
			"attending_yes":   "கண்டிப்பாக வருகிறோம்",
			"attending_no":    "வர இயலவில்லை",
			"attending_maybe": "முயற்சிக்கிறோம்",
		},
		"footer": {
			"thank_you": "உங்களுடன் கொண்டாட ஆவலுடன் காத்திருக்கிறோம்",
		},
	},
	"kannada": {
		"opening": {
			"title":    "ವಿವಾಹ ಆಮಂತ್ರಣ",
			"subtitle": "ನಮ್ಮ ಕುಟುಂಬಗಳೊಂದಿಗೆ",
		},
		"welcome": {
			"title": "ಸುಸ್ವಾಗತ",
		},
		"couple": {
			"title":       "ವಧು-ವರರು",
			"groom_label": "ವರ",
			"bride_label": "ವಧು",
		},
		"events": {
			"title":       "ಸಮಾರಂಭಗಳು",
			"venue_label": "ಸ್ಥಳ",
			"date_label":  "ದಿನಾಂಕ",
			"time_label":  "ಸಮಯ",
		},
		"greetings": {
			"title": "ಶುಭಾಶಯಗಳು",
		},
		"rsvp": {
			"title":         "ಹಾಜರಾತಿ ದೃಢೀಕರಣ",
			"attending_yes": "ಖಂಡಿತ ಬರುತ್ತೇವೆ",
			"attending_no":  "ಬರಲು ಆಗುವುದಿಲ್ಲ",
		},
		"footer": {
			"thank_you": "ನಿಮ್ಮೊಂದಿಗೆ ಸಂಭ್ರಮಿಸಲು ಕಾಯುತ್ತಿದ್ದೇವೆ",
		},
	},
	"malayalam": {
		"opening": {
			"title":    "വിവാഹ ക്ഷണക്കത്ത്",
			"subtitle": "ഞങ്ങളുടെ കുടുംബങ്ങളോടൊപ്പം",
		},
		"welcome": {
			"title": "സ്വാഗതം",
		},
		"couple": {
			"title":       "വധൂവരന്മാർ",
			"groom_label": "വരൻ",
			"bride_label": "വധു",
		},
		"events": {
			"title":       "ചടങ്ങുകൾ",
			"venue_label": "വേദി",
			"date_label":  "തീയതി",
			"time_label":  "സമയം",
		},
		"greetings": {
			"title": "ആശംസകൾ",
		},
		"rsvp": {
			"title":         "സാന്നിധ്യം സ്ഥിരീകരിക്കുക",
			"attending_yes": "തീർച്ചയായും വരുന്നു",
			"attending_no":  "വരാൻ കഴിയില്ല",
		},
		"footer": {
			"thank_you": "നിങ്ങളോടൊപ്പം ആഘോഷിക്കാൻ കാത്തിരിക്കുന്നു",
		},
	},
}
