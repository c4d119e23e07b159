// Package arabic provides low-level Arabic script rune classification shared
// by the normalize and tokenizer packages.
//
// The letterblock enumeration is the dense, fixed alphabet the Design Notes
// of the matching engine call for: rather than switching on ad-hoc runes
// throughout normalization logic, every Arabic consonant (and the handful of
// alif/yaa/hamza variants that fold together) is classified once into one of
// a small number of Letterblock values.
package arabic

// Letterblock is one equivalence class of Arabic graphemes: the rasm shape
// left after diacritics, hamza placement, and presentation-form variation
// are discarded. It is intentionally a dense enumeration (not a rune) so
// switches over it compile to a jump table instead of a rune comparison
// chain.
type Letterblock uint8

const (
	Invalid Letterblock = iota
	Alef                // ا أ إ آ ٱ ء (isolated hamza folds here only when attached to alef; bare hamza is dropped upstream)
	Beh                 // ب
	Teh                 // ت
	Theh                // ث
	Jeem                // ج
	Hah                 // ح
	Khah                // خ
	Dal                 // د
	Thal                // ذ
	Reh                 // ر
	Zain                // ز
	Seen                // س
	Sheen               // ش
	Sad                 // ص
	Dad                 // ض
	Tah                 // ط
	Zah                 // ظ
	Ain                 // ع
	Ghain               // غ
	Feh                 // ف
	Qaf                 // ق
	Kaf                 // ك (including Persian/Urdu keheh variants)
	Lam                 // ل
	Meem                // م
	Noon                // ن
	Heh                 // ه
	Waw                 // و ؤ
	Yeh                 // ي ئ ى (dotless yaa / alif maqsura fold here)
	TehMarbuta          // ة (kept distinct from Heh: shipped policy, see normalize package)
)

// Rune returns a single representative Arabic letter for lb, used to render
// a Letterblock sequence back into a human-readable, comparable string
// (normalize.Form). The choice of representative is arbitrary — any bijection
// works — but using the plain (undotted-variant) base letter keeps archigraphemic
// forms legible when printed or diffed in tests.
func (lb Letterblock) Rune() rune {
	r, ok := letterblockRune[lb]
	if !ok {
		return 0
	}
	return r
}

var letterblockRune = map[Letterblock]rune{
	Alef:       'ا',
	Beh:        'ب',
	Teh:        'ت',
	Theh:       'ث',
	Jeem:       'ج',
	Hah:        'ح',
	Khah:       'خ',
	Dal:        'د',
	Thal:       'ذ',
	Reh:        'ر',
	Zain:       'ز',
	Seen:       'س',
	Sheen:      'ش',
	Sad:        'ص',
	Dad:        'ض',
	Tah:        'ط',
	Zah:        'ظ',
	Ain:        'ع',
	Ghain:      'غ',
	Feh:        'ف',
	Qaf:        'ق',
	Kaf:        'ك',
	Lam:        'ل',
	Meem:       'م',
	Noon:       'ن',
	Heh:        'ه',
	Waw:        'و',
	Yeh:        'ي',
	TehMarbuta: 'ة',
}

// ClassifyLetter classifies a bare (post-diacritic-stripping) Arabic letter
// rune, including presentation-form and hamza-bearing variants, into its
// Letterblock. Returns (Invalid, false) for runes outside the recognized
// consonant/alif set (isolated hamza, punctuation, Latin, digits, etc. are
// all handled by earlier normalization stages and never reach here).
func ClassifyLetter(r rune) (Letterblock, bool) {
	switch r {
	case 'ا', 'أ', 'إ', 'آ', 'ٱ', 'ﺍ', 'ﺎ':
		return Alef, true
	case 'ب', 'ﺏ', 'ﺐ', 'ﺑ', 'ﺒ':
		return Beh, true
	case 'ت', 'ﺕ', 'ﺖ', 'ﺗ', 'ﺘ':
		return Teh, true
	case 'ث', 'ﺙ', 'ﺚ', 'ﺛ', 'ﺜ':
		return Theh, true
	case 'ج', 'ﺝ', 'ﺞ', 'ﺟ', 'ﺠ':
		return Jeem, true
	case 'ح', 'ﺡ', 'ﺢ', 'ﺣ', 'ﺤ':
		return Hah, true
	case 'خ', 'ﺥ', 'ﺦ', 'ﺧ', 'ﺨ':
		return Khah, true
	case 'د', 'ﺩ', 'ﺪ':
		return Dal, true
	case 'ذ', 'ﺫ', 'ﺬ':
		return Thal, true
	case 'ر', 'ﺭ', 'ﺮ':
		return Reh, true
	case 'ز', 'ﺯ', 'ﺰ':
		return Zain, true
	case 'س', 'ﺱ', 'ﺲ', 'ﺳ', 'ﺴ':
		return Seen, true
	case 'ش', 'ﺵ', 'ﺶ', 'ﺷ', 'ﺸ':
		return Sheen, true
	case 'ص', 'ﺹ', 'ﺺ', 'ﺻ', 'ﺼ':
		return Sad, true
	case 'ض', 'ﺽ', 'ﺾ', 'ﺿ', 'ﻀ':
		return Dad, true
	case 'ط', 'ﻁ', 'ﻂ', 'ﻃ', 'ﻄ':
		return Tah, true
	case 'ظ', 'ﻅ', 'ﻆ', 'ﻇ', 'ﻈ':
		return Zah, true
	case 'ع', 'ﻉ', 'ﻊ', 'ﻋ', 'ﻌ':
		return Ain, true
	case 'غ', 'ﻍ', 'ﻎ', 'ﻏ', 'ﻐ':
		return Ghain, true
	case 'ف', 'ﻑ', 'ﻒ', 'ﻓ', 'ﻔ':
		return Feh, true
	case 'ق', 'ﻕ', 'ﻖ', 'ﻗ', 'ﻘ':
		return Qaf, true
	case 'ك', 'ک', 'ﻙ', 'ﻚ', 'ﻛ', 'ﻜ':
		return Kaf, true
	case 'ل', 'ﻝ', 'ﻞ', 'ﻟ', 'ﻠ':
		return Lam, true
	case 'م', 'ﻡ', 'ﻢ', 'ﻣ', 'ﻤ':
		return Meem, true
	case 'ن', 'ﻥ', 'ﻦ', 'ﻧ', 'ﻨ':
		return Noon, true
	case 'ه', 'ﻩ', 'ﻪ', 'ﻫ', 'ﻬ':
		return Heh, true
	case 'و', 'ؤ', 'ﻭ', 'ﻮ':
		return Waw, true
	case 'ي', 'ئ', 'ى', 'ی', 'ﻱ', 'ﻲ', 'ﻳ', 'ﻴ', 'ﯼ', 'ﻰ', 'ﻯ':
		return Yeh, true
	case 'ة', 'ﺓ', 'ﺔ':
		return TehMarbuta, true
	default:
		return Invalid, false
	}
}

// IsArabicLetter reports whether r is a (base or presentation-form) Arabic
// consonant/alif letter recognized by ClassifyLetter, a combining diacritic,
// tatweel, or isolated hamza — i.e. any rune that carries Arabic letter or
// vowel-mark content, as opposed to punctuation, digits, or other scripts.
func IsArabicLetter(r rune) bool {
	if _, ok := ClassifyLetter(r); ok {
		return true
	}
	switch r {
	case 'ء', 'ـ': // isolated hamza, tatweel
		return true
	}
	return r >= 'ً' && r <= 'ْ' || r == 'ٰ' // harakat + sukun/shadda + superscript alif
}

// IsArabicScript reports whether r falls in any of the four Unicode blocks
// used by Arabic-script text (Arabic, Arabic Supplement, Presentation Forms
// A and B). Used by the tokenizer and scriptdetect packages; broader than
// IsArabicLetter (includes digits and punctuation specific to the script).
func IsArabicScript(r rune) bool {
	switch {
	case r >= 0x0600 && r <= 0x06FF:
		return true
	case r >= 0x0750 && r <= 0x077F:
		return true
	case r >= 0xFB50 && r <= 0xFDFF:
		return true
	case r >= 0xFE70 && r <= 0xFEFF:
		return true
	}
	return false
}
