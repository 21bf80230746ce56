package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyAppSubtitle      = "app_subtitle"
	KeyEnterURL         = "enter_url"
	KeyPleaseEnterURL   = "please_enter_url"
	KeyDestination      = "destination"
	KeyCustomPath       = "custom_path"
	KeyPleaseSelectDir  = "please_select_dir"
	KeyBitrate          = "bitrate"
	KeyDownload         = "download"
	KeyDownloading      = "downloading"
	KeyConverting       = "converting"
	KeyReveal           = "reveal"
	KeyOpen             = "open"
	KeyCompleted        = "completed"
	KeyNothingProduced  = "nothing_produced"
	KeyDownloadFailed   = "download_failed"
	KeyDiscardedWarning = "discarded_warning"
	KeyToolsMissing     = "tools_missing"
	KeyErrorOpeningFile = "error_opening_file"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetLanguageOptions returns available language options
func (l *Localization) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"pt":     "Português",
	}
}

// initializeTexts loads all translation tables
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "SongDown — YouTube to MP3",
		KeyAppSubtitle:      "Files are validated and saved where you choose",
		KeyEnterURL:         "YouTube video or playlist URL",
		KeyPleaseEnterURL:   "Please provide a YouTube URL.",
		KeyDestination:      "Save downloaded MP3 to",
		KeyCustomPath:       "Custom output folder (full path)",
		KeyPleaseSelectDir:  "Please select or enter an output folder before downloading.",
		KeyBitrate:          "MP3 bitrate (kbps)",
		KeyDownload:         "Download",
		KeyDownloading:      "Downloading, converting and validating — this may take a while...",
		KeyConverting:       "Download complete, converting to mp3...",
		KeyReveal:           "Reveal",
		KeyOpen:             "Open",
		KeyCompleted:        "Completed: %d validated file(s) available in %s",
		KeyNothingProduced:  "No validated MP3 files available after download. Try a different URL.",
		KeyDownloadFailed:   "Download/validation failed: %v",
		KeyDiscardedWarning: "Discarding unrecognized or invalid file: %s",
		KeyToolsMissing:     "ffmpeg/ffprobe not found on PATH. Audio validation may be limited.",
		KeyErrorOpeningFile: "Could not open %s: %v",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "SongDown — YouTube para MP3",
		KeyAppSubtitle:      "Arquivos validados e salvos onde você escolher",
		KeyEnterURL:         "URL do vídeo ou playlist do YouTube",
		KeyPleaseEnterURL:   "Informe uma URL do YouTube.",
		KeyDestination:      "Salvar MP3 baixado em",
		KeyCustomPath:       "Pasta de saída personalizada (caminho completo)",
		KeyPleaseSelectDir:  "Selecione ou informe uma pasta de saída antes de baixar.",
		KeyBitrate:          "Taxa de bits do MP3 (kbps)",
		KeyDownload:         "Baixar",
		KeyDownloading:      "Baixando, convertendo e validando — isso pode demorar...",
		KeyConverting:       "Download concluído, convertendo para mp3...",
		KeyReveal:           "Mostrar",
		KeyOpen:             "Abrir",
		KeyCompleted:        "Concluído: %d arquivo(s) validado(s) em %s",
		KeyNothingProduced:  "Nenhum arquivo MP3 validado após o download. Tente outra URL.",
		KeyDownloadFailed:   "Falha no download/validação: %v",
		KeyDiscardedWarning: "Descartando arquivo não reconhecido ou inválido: %s",
		KeyToolsMissing:     "ffmpeg/ffprobe não encontrados no PATH. A validação de áudio pode ser limitada.",
		KeyErrorOpeningFile: "Não foi possível abrir %s: %v",
	}
}
