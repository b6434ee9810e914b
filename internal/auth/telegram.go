package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidInitData — подпись не сошлась, данные испорчены, устарели
// или в них нет пользователя. Клиенту уходит 403 без подробностей.
var ErrInvalidInitData = errors.New("invalid init data")

// WebAppUser — профиль пользователя из initData Telegram WebApp
type WebAppUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// GenerateSecretKey выводит ключ подписи из токена бота. Токен не используется
// как ключ напрямую — сначала прогоняется через HMAC с константой "WebAppData",
// как того требует схема проверки initData.
func GenerateSecretKey(botToken string) []byte {
	mac := hmac.New(sha256.New, []byte("WebAppData"))
	mac.Write([]byte(botToken))
	return mac.Sum(nil)
}

// ParseInitData проверяет подпись initData и возвращает пользователя Telegram.
// Строка проверки — все пары кроме hash, отсортированные по ключу и склеенные
// через \n. maxAge ограничивает возраст auth_date (0 — без ограничения).
func ParseInitData(initData string, secretKey []byte, maxAge time.Duration) (*WebAppUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, ErrInvalidInitData
	}

	gotHash := values.Get("hash")
	if gotHash == "" {
		return nil, ErrInvalidInitData
	}
	values.Del("hash")

	pairs := make([]string, 0, len(values))
	for key := range values {
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)
	checkString := strings.Join(pairs, "\n")

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(checkString))
	expectedHash := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expectedHash), []byte(gotHash)) {
		return nil, ErrInvalidInitData
	}

	if maxAge > 0 {
		authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
		if err != nil {
			return nil, ErrInvalidInitData
		}
		if time.Since(time.Unix(authDate, 0)) > maxAge {
			return nil, ErrInvalidInitData
		}
	}

	userJSON := values.Get("user")
	if userJSON == "" {
		return nil, ErrInvalidInitData
	}

	var user WebAppUser
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, ErrInvalidInitData
	}
	if user.ID == 0 {
		return nil, ErrInvalidInitData
	}

	return &user, nil
}
