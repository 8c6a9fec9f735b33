// Package i18n holds the operator-facing text of the console in English and
// Russian. English strings double as message keys; the Russian catalog
// translates them.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/pkordes/decom-ledger/internal/domain"
)

// Message keys. Each is also the English text.
const (
	MsgMainMenu     = "Choose an action (up/down arrows, Enter)"
	MsgAdd          = "Add record"
	MsgView         = "View records"
	MsgEdit         = "Edit record"
	MsgDelete       = "Delete record"
	MsgExport       = "Export records"
	MsgExit         = "Exit"
	MsgKindMenu     = "Choose the record type (up/down arrows, Enter)"
	MsgKindByTime   = "Equipment decommissioned by time"
	MsgKindByReason = "Equipment decommissioned for another reason"

	MsgName            = "Name"
	MsgSerial          = "Serial number"
	MsgRegistered      = "Registration date"
	MsgLastMaintenance = "Last maintenance date"
	MsgDecommissioned  = "Decommission date"
	MsgReason          = "Decommission reason"

	MsgTotal        = "Total records: %d (press Enter to return)"
	MsgLabelByTime  = "by time"
	MsgLabelReason  = "by reason"
	MsgEnterID      = "Enter the record identifier, or 0 to return"
	MsgInvalidID    = "Invalid identifier"
	MsgConfirmDel   = "Delete record with id %d? (1 - yes, 0 - no)"
	MsgDeleted      = "Record deleted. Press Enter to return"
	MsgExported     = "Exported %d records to %s. Press Enter to return"
	MsgExportFailed = "Export failed: %v. Press Enter to return"
)

var russian = map[string]string{
	MsgMainMenu:     "Выберите действие (стрелки вверх и вниз, Enter)",
	MsgAdd:          "Добавить запись",
	MsgView:         "Посмотреть записи",
	MsgEdit:         "Изменить запись",
	MsgDelete:       "Удалить запись",
	MsgExport:       "Выгрузить записи",
	MsgExit:         "Выйти",
	MsgKindMenu:     "Выберите вид записи (стрелки вверх и вниз, Enter)",
	MsgKindByTime:   "Оборудование списанное по времени",
	MsgKindByReason: "Оборудование списанное по другой причине",

	MsgName:            "Название",
	MsgSerial:          "Серийный номер",
	MsgRegistered:      "Дата регистрации",
	MsgLastMaintenance: "Дата последнего обслуживания",
	MsgDecommissioned:  "Дата списания",
	MsgReason:          "Причина списания",

	MsgTotal:        "Всего записей: %d (нажмите Enter для выхода)",
	MsgLabelByTime:  "по времени",
	MsgLabelReason:  "по другой причине",
	MsgEnterID:      "Введите идентификатор записи, для выхода введите 0",
	MsgInvalidID:    "Неверный идентификатор",
	MsgConfirmDel:   "Хотите удалить запись с id: %d? (1 - да, 0 - нет)",
	MsgDeleted:      "Запись успешно удалена. Нажмите Enter для выхода",
	MsgExported:     "Выгружено записей: %d в %s. Нажмите Enter для выхода",
	MsgExportFailed: "Ошибка выгрузки: %v. Нажмите Enter для выхода",

	domain.ValidationMessage: "Неверный ввод данных, повторите ввод (дата в формате: ГГГГ/ММ/ДД, серийный номер в формате: 99-999)",
}

var supported = []language.Tag{language.English, language.Russian}

var cat = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range russian {
		if err := b.SetString(language.Russian, key, text); err != nil {
			panic("i18n: " + err.Error())
		}
	}
	return b
}

// NewPrinter returns a printer for the supported language closest to locale
// ("ru", "ru-RU", "en-GB", ...). Unknown locales get English.
func NewPrinter(locale string) *message.Printer {
	return message.NewPrinter(Match(locale), message.Catalog(cat))
}

// Match returns the supported language tag that best fits locale.
func Match(locale string) language.Tag {
	_, i, _ := language.NewMatcher(supported).Match(language.Make(locale))
	return supported[i]
}
