package utils

import "strings"

// StringEnum repeatable string flag, "a,b" and "-x a -x b" both append.
// A "~regexp" value is kept whole, commas included.
type StringEnum []string

func (i *StringEnum) String() string {
	return strings.Join(*i, ",")
}

func (i *StringEnum) Set(value string) error {
	if v := strings.TrimSpace(value); strings.HasPrefix(v, "~") {
		*i = append(*i, v)
		return nil
	}
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*i = append(*i, v)
		}
	}
	return nil
}
