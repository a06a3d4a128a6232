package converter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/notaneet/roomstats/model"
)

type JSONConverter struct {
	Pretty bool
}

func (j JSONConverter) Write(set model.ReportSet, out string) error {
	if out == "" {
		return fmt.Errorf("-output can not be empty")
	}

	var ret []byte
	var err error
	if j.Pretty {
		ret, err = json.MarshalIndent(set, "", "  ")
	} else {
		ret, err = json.Marshal(set)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(out, ret, 0644)
}
