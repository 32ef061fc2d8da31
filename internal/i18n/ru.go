package i18n

var ruTable = map[string]string{
	"sary_chelek": "Сары-Челек",
	"language":    "Язык",

	// Gate: credential card
	"signin_tab":       "Вход",
	"signup_tab":       "Регистрация",
	"signin_subtitle":  "Войдите в свой аккаунт",
	"signup_subtitle":  "Зарегистрируйтесь для доступа к сайту",
	"label_name":       "Полное имя",
	"label_email":      "Email",
	"label_password":   "Пароль",
	"label_confirm":    "Подтвердите пароль",
	"submit_signin":    "Войти",
	"submit_signup":    "Зарегистрироваться",
	"submitting_signin": "Вход...",
	"submitting_signup": "Регистрация...",
	"back":             "Назад",
	"remember_email":   "Запомнить email",

	// Gate: outcomes
	"error_fix_fields":        "Пожалуйста, исправьте ошибки",
	"error_account_not_found": "Аккаунт не найден",
	"error_wrong_password":    "Неверный пароль",
	"error_email_registered":  "Этот email уже зарегистрирован!",
	"success_signin":          "Вход выполнен!",
	"success_signup":          "Вы успешно зарегистрировались!",

	// Validator message keys
	"error_name_required":      "Введите ваше имя",
	"error_name_too_short":     "Имя должно быть не менее 2 символов",
	"error_email_required":     "Введите ваш email",
	"error_email_invalid":      "Неверный формат email",
	"error_password_required":  "Введите пароль",
	"error_password_too_short": "Пароль должен быть не менее 8 символов",
	"error_confirm_required":   "Подтвердите пароль",
	"error_passwords_mismatch": "Пароли не совпадают",

	// Password strength meter
	"strength_1": "Слабый",
	"strength_2": "Средний",
	"strength_3": "Хороший",
	"strength_4": "Сильный",

	// Showcase
	"nav_main":      "Главная",
	"nav_about":     "О нас",
	"nav_history":   "История",
	"nav_nature":    "Природа",
	"nav_gallery":   "Галерея",
	"nav_how_to_go": "Как добраться",
	"nav_contact":   "Контакты",

	"page_main":      "Сары-Челек — горное озеро и биосферный заповедник в Джалал-Абадской области Кыргызстана. Хрустальная вода, ореховые леса и тишина, которую трудно найти где-то ещё.",
	"page_about":     "Заповедник основан в 1959 году для охраны уникальных орехово-плодовых лесов. Сегодня он принимает путешественников со всего мира.",
	"page_history":   "По легенде озеро получило имя от жёлтого ковша (сары челек), которым пастух зачерпнул его воду. Само озеро родилось после древнего землетрясения.",
	"page_nature":    "Семь озёр, более тысячи видов растений, снежные барсы и бородачи в окрестных хребтах. Здешние ореховые леса — одни из крупнейших на Земле.",
	"page_gallery":   "Фотографии озера в разные сезоны: весеннее цветение, изумрудное лето, золотая ореховая осень и неподвижное зеркало зимы.",
	"page_how_to_go": "Долетите до Оша или Джалал-Абада, затем на машине через Таш-Кумыр до села Аркыт. Вход в заповедник — в нескольких минутах от села.",
	"page_contact":   "Контора заповедника, село Аркыт, Аксыйский район, Джалал-Абадская область.",

	"contact_email": "info@sary-chelek.kg",
	"contact_phone": "+996 3742 5-01-23",

	"welcome_back":         "С возвращением",
	"back_to_registration": "Выйти",
	"music_on":             "Музыка: вкл",
	"music_off":            "Музыка: выкл",
	"copied":               "Скопировано!",
}
