package validator

import (
	"regexp"
	"strings"
)

// 取引PINは数字4桁
var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

func IsValidPIN(pin string) bool {
	return pinPattern.MatchString(pin)
}

// 州名が選択されているか（空白だけもNG）
func HasDeliveryState(state string) bool {
	return strings.TrimSpace(state) != ""
}

// 自宅の州との完全一致（大文字小文字も区別）で判定する
func IsInterState(homeState string, deliveryState string) bool {
	return deliveryState != homeState
}
