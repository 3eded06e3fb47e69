package tts

// neuralVoices maps a detected ISO 639-1 code to an Edge neural voice.
var neuralVoices = map[string]string{
	"hi": "hi-IN-SwaraNeural",
	"mr": "mr-IN-AarohiNeural",
	"bn": "bn-IN-TanishaaNeural",
	"te": "te-IN-ShrutiNeural",
	"ta": "ta-IN-PallaviNeural",
	"gu": "gu-IN-DhwaniNeural",
	"ur": "ur-IN-GulshanNeural",
	"kn": "kn-IN-SapnaNeural",
	"ml": "ml-IN-SobhanaNeural",
	"pa": "pa-IN-OjasNeural",
	"ja": "ja-JP-NanamiNeural",
	"zh": "zh-CN-XiaoxiaoNeural",
	"es": "es-ES-ElviraNeural",
	"fr": "fr-FR-DeniseNeural",
	"de": "de-DE-KatjaNeural",
	"ko": "ko-KR-SunHiNeural",
}

// DefaultFallbackVoice is used by the paid provider when the accent tag is
// unmapped.
const DefaultFallbackVoice = "nova"

// fallbackVoices maps a locale tag (or language name) to an OpenAI voice.
// It covers English variants and two Indian languages and is only consulted
// by the last-resort paid provider.
var fallbackVoices = map[string]string{
	"en-US":   "nova",
	"en-GB":   "shimmer",
	"en-AU":   "nova",
	"en-IN":   "shimmer",
	"mr-IN":   "shimmer",
	"hi-IN":   "shimmer",
	"Marathi": "shimmer",
	"Hindi":   "shimmer",
}

// ResolveNeuralVoice returns the Edge neural voice for a detected language
// code, if one is mapped.
func ResolveNeuralVoice(code string) (string, bool) {
	voice, ok := neuralVoices[code]
	return voice, ok
}

// ResolveFallbackVoice returns the OpenAI voice for an accent tag, falling
// back to the default voice for unmapped keys.
func ResolveFallbackVoice(accent string) string {
	if voice, ok := fallbackVoices[accent]; ok {
		return voice
	}
	return DefaultFallbackVoice
}
