package utils

import (
	json "github.com/bytedance/sonic"
)

func JsonString(obj any) string {
	jsonStr, err := json.Marshal(obj)
	if err != nil {
		return ""
	}
	return string(jsonStr)
}

func JsonIndent(obj any) string {
	jsonStr, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return ""
	}
	return string(jsonStr)
}
