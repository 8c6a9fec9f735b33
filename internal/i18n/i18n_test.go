package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/pkordes/decom-ledger/internal/domain"
	"github.com/pkordes/decom-ledger/internal/i18n"
)

func TestMatch(t *testing.T) {
	assert.Equal(t, language.Russian, i18n.Match("ru"))
	assert.Equal(t, language.Russian, i18n.Match("ru-RU"))
	assert.Equal(t, language.English, i18n.Match("en-GB"))
	assert.Equal(t, language.English, i18n.Match("xx"))
	assert.Equal(t, language.English, i18n.Match(""))
}

func TestNewPrinter_English(t *testing.T) {
	p := i18n.NewPrinter("en")

	assert.Equal(t, "Exit", p.Sprintf(i18n.MsgExit))
	assert.Equal(t, "Total records: 3 (press Enter to return)", p.Sprintf(i18n.MsgTotal, 3))
}

func TestNewPrinter_Russian(t *testing.T) {
	p := i18n.NewPrinter("ru")

	assert.Equal(t, "Выйти", p.Sprintf(i18n.MsgExit))
	assert.Equal(t, "Хотите удалить запись с id: 7? (1 - да, 0 - нет)", p.Sprintf(i18n.MsgConfirmDel, 7))
	assert.Contains(t, p.Sprintf(domain.ValidationMessage), "ГГГГ/ММ/ДД")
}
