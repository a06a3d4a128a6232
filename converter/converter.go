package converter

import "github.com/notaneet/roomstats/model"

type IConverter interface {
	Write(set model.ReportSet, out string) error
}
