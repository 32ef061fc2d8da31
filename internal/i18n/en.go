package i18n

var enTable = map[string]string{
	"sary_chelek": "Sary-Chelek",
	"language":    "Language",

	// Gate: credential card
	"signin_tab":       "Sign In",
	"signup_tab":       "Sign Up",
	"signin_subtitle":  "Sign in to your account",
	"signup_subtitle":  "Register to access the site",
	"label_name":       "Full name",
	"label_email":      "Email",
	"label_password":   "Password",
	"label_confirm":    "Confirm password",
	"submit_signin":    "Sign In",
	"submit_signup":    "Sign Up",
	"submitting_signin": "Signing in...",
	"submitting_signup": "Signing up...",
	"back":             "Back",
	"remember_email":   "Remember email",

	// Gate: outcomes
	"error_fix_fields":        "Please fix the errors above",
	"error_account_not_found": "Account not found",
	"error_wrong_password":    "Wrong password",
	"error_email_registered":  "This email is already registered!",
	"success_signin":          "Signed in!",
	"success_signup":          "You have successfully registered",

	// Validator message keys
	"error_name_required":      "Name is required",
	"error_name_too_short":     "Name must be at least 2 characters",
	"error_email_required":     "Email is required",
	"error_email_invalid":      "Invalid email format",
	"error_password_required":  "Password is required",
	"error_password_too_short": "Password must be at least 8 characters",
	"error_confirm_required":   "Please confirm your password",
	"error_passwords_mismatch": "Passwords do not match",

	// Password strength meter
	"strength_1": "Weak",
	"strength_2": "Fair",
	"strength_3": "Good",
	"strength_4": "Strong",

	// Showcase
	"nav_main":      "Main",
	"nav_about":     "About",
	"nav_history":   "History",
	"nav_nature":    "Nature",
	"nav_gallery":   "Gallery",
	"nav_how_to_go": "How to go",
	"nav_contact":   "Contact",

	"page_main":      "Sary-Chelek is a mountain lake and biosphere reserve in the Jalal-Abad region of Kyrgyzstan. Crystal water, walnut forests and silence that is hard to find anywhere else.",
	"page_about":     "The reserve was founded in 1959 to protect the unique walnut-fruit forests. Today it welcomes travellers from all over the world.",
	"page_history":   "According to legend, the lake got its name from a yellow bowl (sary chelek) that a shepherd dipped into its waters. The lake itself was born of an ancient earthquake.",
	"page_nature":    "Seven lakes, over a thousand plant species, snow leopards and bearded vultures in the surrounding ridges. The walnut forests here are among the largest on Earth.",
	"page_gallery":   "Photographs of the lake through the seasons: spring bloom, emerald summer, golden walnut autumn and the still mirror of winter.",
	"page_how_to_go": "Fly to Osh or Jalal-Abad, then drive via Tash-Kumyr to the village of Arkyt. The reserve entrance is a short ride from the village.",
	"page_contact":   "Reserve office, Arkyt village, Aksy district, Jalal-Abad region.",

	"contact_email": "info@sary-chelek.kg",
	"contact_phone": "+996 3742 5-01-23",

	"welcome_back":         "Welcome back",
	"back_to_registration": "Sign out",
	"music_on":             "Music: on",
	"music_off":            "Music: off",
	"copied":               "Copied!",
}
