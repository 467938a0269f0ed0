package vanilla

// ChromeClass is a typed identifier for the page chrome classes.
type ChromeClass string

const (
	ClassPage    ChromeClass = "confform-page"
	ClassCard    ChromeClass = "confform-card"
	ClassForm    ChromeClass = "confform-form"
	ClassError   ChromeClass = "confform-error"
	ClassField   ChromeClass = "confform-field"
	ClassToasts  ChromeClass = "confform-toasts"
	ClassActions ChromeClass = "confform-actions"
)

// Utility classes carried over from the original markup.
const (
	pageClass    = "min-h-screen flex items-center justify-center bg-gradient-to-br from-gray-50 to-gray-200 p-4"
	cardClass    = "bg-white shadow-lg rounded-xl p-8 w-full max-w-lg"
	headingClass = "text-2xl font-semibold text-center mb-6 text-gray-700"
	errorClass   = "bg-red-50 text-red-500 p-3 rounded-lg mb-4"
	formClass    = "space-y-4"
	labelClass   = "block text-sm font-medium text-gray-700"
	controlClass = "mt-1 p-3 w-full border border-gray-300 rounded-lg focus:outline-none focus:ring-2 focus:ring-blue-400"
)

func classes() map[string]string {
	return map[string]string{
		"page":    string(ClassPage) + " " + pageClass,
		"card":    string(ClassCard) + " " + cardClass,
		"heading": headingClass,
		"error":   string(ClassError) + " " + errorClass,
		"form":    string(ClassForm) + " " + formClass,
		"field":   string(ClassField),
		"label":   labelClass,
		"control": controlClass,
		"toasts":  string(ClassToasts),
		"actions": string(ClassActions),
	}
}
