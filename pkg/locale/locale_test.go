package locale

import (
	"sync"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

var invalidMax = &i18n.Message{
	ID:    "bank.settings.maxbal.invalid",
	Other: "Amount must be greater than zero and less than {{.Max}}.",
}

func TestInitLang(t *testing.T) {
	InitLang("", "en")
	langs := GetLanguages()
	if len(langs) != 1 {
		t.Error("Shouldn't have loaded more than a single language")
	}
	InitLang("testdata", "en")
	langs = GetLanguages()
	if len(langs) != 2 {
		t.Error("Expected 2 languages to be loaded, the default, and testdata/active.ru.toml")
	}
	if langs["ru"] != "Русский" {
		t.Error("Expected the ru language name to come from its message file: " + langs["ru"])
	}
}

func TestLocalizeMessage(t *testing.T) {
	InitLang("", "")
	data := map[string]interface{}{"Max": "9,223,372,036,854,775,807"}

	output := LocalizeMessage(invalidMax, data, "")
	if output != "Amount must be greater than zero and less than 9,223,372,036,854,775,807." {
		t.Error("Substitution was not performed properly: " + output)
	}

	output = LocalizeMessage(invalidMax, data, "ru")
	if output != "Amount must be greater than zero and less than 9,223,372,036,854,775,807." {
		t.Error("Substitution should fall back to the default if ru has not been loaded: " + output)
	}

	InitLang("testdata", "en")
	output = LocalizeMessage(invalidMax, data, "ru")
	if output != "Сумма должна быть больше нуля и меньше 9,223,372,036,854,775,807." {
		t.Error("Substitution should succeed once ru has been loaded: " + output)
	}
}

func TestHumanizeNumber(t *testing.T) {
	InitLang("", "en")
	if out := HumanizeNumber(2000000000, "en"); out != "2,000,000,000" {
		t.Error("unexpected english grouping: " + out)
	}
	if out := HumanizeNumber(999, ""); out != "999" {
		t.Error("small numbers should not be grouped: " + out)
	}
	if out := HumanizeNumber(1500, "not a language"); out != "1,500" {
		t.Error("unparseable languages should fall back to english: " + out)
	}
}

func TestGetBundle_concurrent(t *testing.T) {
	lock.Lock()
	bundleInstance = nil
	lock.Unlock()

	var wg sync.WaitGroup
	bundles := make([]*i18n.Bundle, 8)
	for i := range bundles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bundles[i] = GetBundle()
			output := LocalizeMessage(invalidMax, map[string]interface{}{"Max": "10"}, "")
			if output != "Amount must be greater than zero and less than 10." {
				t.Error("Substitution was not performed properly: " + output)
			}
		}(i)
	}
	wg.Wait()

	for _, b := range bundles {
		if b != bundles[0] {
			t.Error("the bundle should only be loaded once")
		}
	}
}
