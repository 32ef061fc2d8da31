package i18n

var kgTable = map[string]string{
	"sary_chelek": "Сары-Челек",
	"language":    "Тил",

	// Gate: credential card
	"signin_tab":       "Кирүү",
	"signup_tab":       "Катталуу",
	"signin_subtitle":  "Аккаунтуңуз менен кириңиз",
	"signup_subtitle":  "Сайтка кирүү үчүн катталыңыз",
	"label_name":       "Аты-жөнү",
	"label_email":      "Email",
	"label_password":   "Сырсөз",
	"label_confirm":    "Сырсөздү ырастоо",
	"submit_signin":    "Кирүү",
	"submit_signup":    "Катталуу",
	"submitting_signin": "Кирүүдө...",
	"submitting_signup": "Катталууда...",
	"back":             "Артка",
	"remember_email":   "Email сактоо",

	// Gate: outcomes
	"error_fix_fields":        "Маалыматтарды туура толтуруңуз",
	"error_account_not_found": "Тиркелген аккаунт табылган жок",
	"error_wrong_password":    "Сырсөз туура эмес",
	"error_email_registered":  "Бул email катталган!",
	"success_signin":          "Кирүү ийгиликтүү!",
	"success_signup":          "Ийгиликтүү катталдыңыз!",

	// Validator message keys
	"error_name_required":      "Аты-жөнүңүздү киргизиңиз",
	"error_name_too_short":     "Аты-жөнү 2 тамгадан кем болбошу керек",
	"error_email_required":     "Email дарегиңизди киргизиңиз",
	"error_email_invalid":      "Email дареги туура эмес",
	"error_password_required":  "Сырсөздү киргизиңиз",
	"error_password_too_short": "Сырсөз 8 тамгадан кем болбошу керек",
	"error_confirm_required":   "Сырсөздү ырастаңыз",
	"error_passwords_mismatch": "Сырсөздөр дал келбейт",

	// Password strength meter
	"strength_1": "Алсыз",
	"strength_2": "Орточо",
	"strength_3": "Жакшы",
	"strength_4": "Күчтүү",

	// Showcase
	"nav_main":      "Башкы",
	"nav_about":     "Биз жөнүндө",
	"nav_history":   "Тарых",
	"nav_nature":    "Жаратылыш",
	"nav_gallery":   "Галерея",
	"nav_how_to_go": "Кантип баруу",
	"nav_contact":   "Байланыш",

	"page_main":      "Сары-Челек — Кыргызстандын Жалал-Абад облусундагы тоо көлү жана биосфералык коругу. Тунук суу, жаңгак токойлору жана башка жерден табылбаган тынчтык.",
	"page_about":     "Корук 1959-жылы уникалдуу жаңгак-жемиш токойлорун коргоо үчүн түзүлгөн. Бүгүн ал дүйнөнүн ар тарабынан саякатчыларды кабыл алат.",
	"page_history":   "Уламыш боюнча көл атын койчу суусун сузган сары челектен алган. Көлдүн өзү байыркы жер титирөөдөн пайда болгон.",
	"page_nature":    "Жети көл, миңден ашык өсүмдүк түрү, тоо кыркаларында илбирстер менен балта жуткучтар. Бул жердеги жаңгак токойлору жер жүзүндөгү эң чоңдордон.",
	"page_gallery":   "Көлдүн ар мезгилдеги сүрөттөрү: жазгы гүлдөө, изумруд жай, алтын жаңгак күзү жана кыштын кыймылсыз күзгүсү.",
	"page_how_to_go": "Ош же Жалал-Абадга учуп, андан соң Таш-Көмүр аркылуу Аркыт айылына жетиңиз. Коруктун кире бериши айылдан бир аз аралыкта.",
	"page_contact":   "Коруктун кеңсеси, Аркыт айылы, Аксы району, Жалал-Абад облусу.",

	"contact_email": "info@sary-chelek.kg",
	"contact_phone": "+996 3742 5-01-23",

	"welcome_back":         "Кайра кош келиңиз",
	"back_to_registration": "Чыгуу",
	"music_on":             "Музыка: күйүк",
	"music_off":            "Музыка: өчүк",
	"copied":               "Көчүрүлдү!",
}
