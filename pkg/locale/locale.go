package locale

import (
	"io/ioutil"
	"log"
	"path"
	"regexp"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultLang       = "en"
	DefaultLocalePath = "locales/"
)

// lock guards the bundle, the default language and the loaded languages; InitLang may run while
// requests are being localized.
var lock sync.RWMutex

var bundleInstance *i18n.Bundle

var defaultLang = DefaultLang

var localeLanguages = make(map[string]string)

func InitLang(localePath, lang string) {
	lock.Lock()
	defer lock.Unlock()
	initLang(localePath, lang)
}

func initLang(localePath, lang string) {
	if localePath == "" {
		localePath = DefaultLocalePath
	}
	if lang == "" {
		lang = DefaultLang
	}
	defaultLang = lang
	bundleInstance, localeLanguages = loadTranslations(localePath, lang)
}

// GetBundle returns the loaded bundle, loading the default locale path on first use if InitLang
// was never called.
func GetBundle() *i18n.Bundle {
	lock.RLock()
	bundle := bundleInstance
	lock.RUnlock()
	if bundle != nil {
		return bundle
	}

	lock.Lock()
	defer lock.Unlock()
	if bundleInstance == nil {
		initLang("", "")
	}
	return bundleInstance
}

func GetLanguages() map[string]string {
	lock.RLock()
	defer lock.RUnlock()
	return localeLanguages
}

func GetDefaultLang() string {
	lock.RLock()
	defer lock.RUnlock()
	return defaultLang
}

func LoadTranslations(localePath, defaultLang string) *i18n.Bundle {
	bundle, languages := loadTranslations(localePath, defaultLang)
	lock.Lock()
	bundleInstance = bundle
	localeLanguages = languages
	lock.Unlock()
	return bundle
}

func loadTranslations(localePath, defaultLang string) (*i18n.Bundle, map[string]string) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	languages := make(map[string]string)
	languages[defaultLang] = language.Make(defaultLang).String()

	files, err := ioutil.ReadDir(localePath)
	if err == nil {
		re := regexp.MustCompile(`^active\.(?P<lang>.*)\.toml$`)
		for _, file := range files {
			if match := re.FindStringSubmatch(file.Name()); match != nil {
				fileLang := match[re.SubexpIndex("lang")]

				if _, err := bundle.LoadMessageFile(path.Join(localePath, file.Name())); err != nil {
					log.Println(err)
				} else {
					langName, _ := i18n.NewLocalizer(bundle, fileLang).Localize(&i18n.LocalizeConfig{
						DefaultMessage: &i18n.Message{
							ID:    "locale.language.name",
							Other: "English",
						},
					})
					languages[fileLang] = langName

					log.Printf("[Locale] Loaded language: %s - %s", fileLang, langName)
				}
			}
		}
	}
	return bundle, languages
}

// LocalizeMessage renders message in lang, falling back to the default language when lang is empty
// and to the message's own text when no translation is loaded.
func LocalizeMessage(msg *i18n.Message, templateData map[string]interface{}, lang string) string {
	if lang == "" {
		lang = GetDefaultLang()
	}
	localizer := i18n.NewLocalizer(GetBundle(), lang)
	out, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   templateData,
	})
	if err != nil {
		log.Printf("[Locale] Warning: %s", err)
	}

	// fix go-i18n extract
	return strings.ReplaceAll(out, "\\n", "\n")
}

// HumanizeNumber formats n with the digit grouping of lang, e.g. 2000000000 -> "2,000,000,000" in English.
func HumanizeNumber(n int64, lang string) string {
	if lang == "" {
		lang = GetDefaultLang()
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag).Sprintf("%d", n)
}
