package filters

import "strings"

// ParseCallbackData розбирає callback data формату "name?k1=v1&k2=v2"
// у мапу параметрів. Рядок без рівно одного '?' дає порожню мапу,
// пари без '=' пропускаються.
func ParseCallbackData(s string) map[string]string {
	res := make(map[string]string)

	_, rawParams, found := strings.Cut(s, "?")
	if !found || strings.Contains(rawParams, "?") {
		return res
	}

	for _, pair := range strings.Split(rawParams, "&") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		res[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return res
}
