// CLAUDE:SUMMARY Hand-maintained per-locale seed vocabularies (skip words, time units, relative markers) merged with CLDR names.
package importer

import "github.com/hazyhaar/dateglot/pkg/language"

// cldrAdapters lists the supported locales. The seeds carry everything a
// date grammar needs that CLDR does not publish: skip and pertain words,
// time-unit nouns with their inflections, ago/in markers and spelling
// rewrites. CLDR contributes month, weekday and am/pm names on top.
var cldrAdapters = []*cldrAdapter{
	{locale: "en", code: "en", desc: "English (CLDR gregorian + seed)", seed: seedEnglish},
	{locale: "es", code: "es", desc: "Espagnol (CLDR gregorian + seed)", seed: seedSpanish},
	{locale: "fr", code: "fr", desc: "Francais (CLDR gregorian + seed)", seed: seedFrench},
	{locale: "de", code: "de", desc: "Allemand (CLDR gregorian + seed)", seed: seedGerman},
	{locale: "ru", code: "ru", desc: "Russe (CLDR gregorian + seed)", seed: seedRussian},
	{locale: "ja", code: "ja", desc: "Japonais (CLDR gregorian + seed)", seed: seedJapanese},
	{locale: "th", code: "th", desc: "Thai (CLDR gregorian + seed)", seed: seedThai},
}

func seedEnglish() *language.Info {
	return &language.Info{
		Name:    "english",
		Skip:    []string{" ", "'", ",", "-", ".", "/", ";", "@", "[", "]", "|", "，", "at"},
		Pertain: []string{"of"},
		Year:    []string{"year", "years", "yr"},
		Month:   []string{"month", "months"},
		Week:    []string{"week", "weeks"},
		Day:     []string{"day", "days"},
		Hour:    []string{"hour", "hours", "hr"},
		Minute:  []string{"minute", "minutes", "min"},
		Second:  []string{"second", "seconds", "sec"},
		Ago:     []string{"ago"},
		In:      []string{"in"},
		Simplifications: []language.Simplification{
			{Pattern: `(\d+)(st|nd|rd|th)`, Replacement: "$1"},
			{Pattern: `(\d+)\s*h\s*(\d+)\s*m?`, Replacement: "$1:$2"},
		},
	}
}

func seedSpanish() *language.Info {
	return &language.Info{
		Name:                  "spanish",
		SentenceSplitterGroup: language.SplitterSpanish,
		Skip:                  []string{" ", "'", ",", "-", ".", "/", ";", "@", "[", "]", "|", "el", "las", "y", "a"},
		Pertain:               []string{"de", "del"},
		Year:                  []string{"año", "años", "ano", "anos"},
		Month:                 []string{"mes", "meses"},
		Week:                  []string{"semana", "semanas"},
		Day:                   []string{"día", "días", "dia", "dias"},
		Hour:                  []string{"hora", "horas"},
		Minute:                []string{"minuto", "minutos"},
		Second:                []string{"segundo", "segundos"},
		Ago:                   []string{"hace"},
		In:                    []string{"en", "dentro de"},
	}
}

func seedFrench() *language.Info {
	return &language.Info{
		Name:    "french",
		Skip:    []string{" ", "'", ",", "-", ".", "/", ";", "@", "[", "]", "|", "le", "la", "et", "à", "a"},
		Pertain: []string{"de", "du"},
		Year:    []string{"année", "années", "an", "ans"},
		Month:   []string{"mois"},
		Week:    []string{"semaine", "semaines"},
		Day:     []string{"jour", "jours", "journée", "journées"},
		Hour:    []string{"heure", "heures"},
		Minute:  []string{"minute", "minutes"},
		Second:  []string{"seconde", "secondes"},
		Ago:     []string{"il y a"},
		In:      []string{"dans", "en"},
		Simplifications: []language.Simplification{
			{Pattern: `1er`, Replacement: "1"},
			{Pattern: `(\d+)h(\d+)`, Replacement: "$1:$2"},
		},
	}
}

func seedGerman() *language.Info {
	return &language.Info{
		Name:   "german",
		Skip:   []string{" ", "'", ",", "-", ".", "/", ";", "@", "[", "]", "|", "um", "uhr", "und", "den"},
		Year:   []string{"jahr", "jahre", "jahren"},
		Month:  []string{"monat", "monate", "monaten"},
		Week:   []string{"woche", "wochen"},
		Day:    []string{"tag", "tage", "tagen"},
		Hour:   []string{"stunde", "stunden"},
		Minute: []string{"minute", "minuten"},
		Second: []string{"sekunde", "sekunden"},
		Ago:    []string{"vor"},
		In:     []string{"in"},
	}
}

func seedRussian() *language.Info {
	return &language.Info{
		Name:    "russian",
		Skip:    []string{" ", "'", ",", "-", ".", "/", ";", "@", "[", "]", "|", "в", "и", "г"},
		Year:    []string{"год", "года", "лет"},
		Month:   []string{"месяц", "месяца", "месяцев"},
		Week:    []string{"неделя", "недели", "недель", "неделю"},
		Day:     []string{"день", "дня", "дней"},
		Hour:    []string{"час", "часа", "часов"},
		Minute:  []string{"минута", "минуту", "минуты", "минут"},
		Second:  []string{"секунда", "секунду", "секунды", "секунд"},
		Ago:     []string{"назад"},
		In:      []string{"через"},
	}
}

func seedJapanese() *language.Info {
	return &language.Info{
		Name:                  "japanese",
		SentenceSplitterGroup: language.SplitterCJK,
		NoWordSpacing:         true,
		Skip:                  []string{" ", "'", ",", "-", ".", "/", ";", "@", "[", "]", "|"},
		Year:                  []string{"年"},
		Month:                 []string{"月", "ヶ月", "ヵ月", "か月"},
		Week:                  []string{"週間", "週"},
		Day:                   []string{"日", "日間"},
		Hour:                  []string{"時間", "時"},
		Minute:                []string{"分", "分間"},
		Second:                []string{"秒", "秒間"},
		Ago:                   []string{"前"},
		AM:                    []string{"午前"},
		PM:                    []string{"午後"},
	}
}

func seedThai() *language.Info {
	return &language.Info{
		Name:                  "thai",
		SentenceSplitterGroup: language.SplitterThai,
		Skip:                  []string{" ", "'", ",", "-", ".", "/", ";", "@", "[", "]", "|", "ที่", "เมื่อ"},
		Year:                  []string{"ปี"},
		Month:                 []string{"เดือน"},
		Week:                  []string{"สัปดาห์"},
		Day:                   []string{"วัน"},
		Hour:                  []string{"ชั่วโมง"},
		Minute:                []string{"นาที"},
		Second:                []string{"วินาที"},
		Ago:                   []string{"ที่แล้ว", "ก่อน"},
	}
}
