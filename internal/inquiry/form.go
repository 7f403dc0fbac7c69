package inquiry

import (
	"errors"
	"strings"
)

var (
	ErrMissingName  = errors.New("name is required")
	ErrMissingPhone = errors.New("phone is required")
)

// Intents returns the consultation intents offered by the form.
func Intents() []string {
	return []string{"资产配置诊断", "香港保险/储蓄", "海外资产配置", "日本健康体检", "其他"}
}

// Form is the contact form content.
type Form struct {
	Name    string
	Phone   string
	Intent  int
	Message string
}

// IntentLabel returns the label of the selected intent, or the last
// ("other") intent when the index is out of range.
func (f Form) IntentLabel() string {
	intents := Intents()
	if f.Intent < 0 || f.Intent >= len(intents) {
		return intents[len(intents)-1]
	}
	return intents[f.Intent]
}

// Validate gates the submit action on the required fields.
func (f Form) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(f.Phone) == "" {
		return ErrMissingPhone
	}
	return nil
}
