package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testBotToken = "7913021337:AAFkM1x9qTestTokenForUnitTestsOnly0"

// signInitData подписывает пары так же, как это делает клиент Telegram
func signInitData(secretKey []byte, values url.Values) string {
	pairs := make([]string, 0, len(values))
	for key := range values {
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(strings.Join(pairs, "\n")))
	values.Set("hash", hex.EncodeToString(mac.Sum(nil)))

	return values.Encode()
}

func validValues(authDate time.Time) url.Values {
	values := url.Values{}
	values.Set("query_id", "AAHdF6IQAAAAAN0XohDhrOrc")
	values.Set("auth_date", strconv.FormatInt(authDate.Unix(), 10))
	values.Set("user", `{"id":99281932,"username":"rizzyfox","first_name":"Андрій"}`)
	return values
}

func TestParseInitDataValid(t *testing.T) {
	secretKey := GenerateSecretKey(testBotToken)
	initData := signInitData(secretKey, validValues(time.Now()))

	user, err := ParseInitData(initData, secretKey, 24*time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, int64(99281932), user.ID)
	assert.Equal(t, "rizzyfox", user.Username)
	assert.Equal(t, "Андрій", user.FirstName)
}

func TestParseInitDataTamperedHash(t *testing.T) {
	secretKey := GenerateSecretKey(testBotToken)
	initData := signInitData(secretKey, validValues(time.Now()))

	// Портим один символ подписи
	values, err := url.ParseQuery(initData)
	assert.NoError(t, err)
	hash := values.Get("hash")
	flipped := "a"
	if hash[0] == 'a' {
		flipped = "b"
	}
	values.Set("hash", flipped+hash[1:])

	user, err := ParseInitData(values.Encode(), secretKey, 24*time.Hour)
	assert.ErrorIs(t, err, ErrInvalidInitData)
	assert.Nil(t, user)
}

func TestParseInitDataTamperedPayload(t *testing.T) {
	secretKey := GenerateSecretKey(testBotToken)
	initData := signInitData(secretKey, validValues(time.Now()))

	// Подменяем пользователя при действительной подписи старых данных
	values, err := url.ParseQuery(initData)
	assert.NoError(t, err)
	values.Set("user", `{"id":1,"username":"attacker"}`)

	user, err := ParseInitData(values.Encode(), secretKey, 24*time.Hour)
	assert.ErrorIs(t, err, ErrInvalidInitData)
	assert.Nil(t, user)
}

func TestParseInitDataWrongBotToken(t *testing.T) {
	initData := signInitData(GenerateSecretKey("1234567890:AAEOtherBotToken"), validValues(time.Now()))

	user, err := ParseInitData(initData, GenerateSecretKey(testBotToken), 24*time.Hour)
	assert.ErrorIs(t, err, ErrInvalidInitData)
	assert.Nil(t, user)
}

func TestParseInitDataNoUser(t *testing.T) {
	secretKey := GenerateSecretKey(testBotToken)
	values := validValues(time.Now())
	values.Del("user")
	initData := signInitData(secretKey, values)

	user, err := ParseInitData(initData, secretKey, 24*time.Hour)
	assert.ErrorIs(t, err, ErrInvalidInitData)
	assert.Nil(t, user)
}

func TestParseInitDataStale(t *testing.T) {
	secretKey := GenerateSecretKey(testBotToken)
	initData := signInitData(secretKey, validValues(time.Now().Add(-48*time.Hour)))

	user, err := ParseInitData(initData, secretKey, 24*time.Hour)
	assert.ErrorIs(t, err, ErrInvalidInitData)
	assert.Nil(t, user)

	// Без ограничения возраста та же подпись принимается
	user, err = ParseInitData(initData, secretKey, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(99281932), user.ID)
}

func TestParseInitDataMalformed(t *testing.T) {
	secretKey := GenerateSecretKey(testBotToken)

	for _, initData := range []string{"", "%zz", "auth_date=123", "hash=deadbeef"} {
		user, err := ParseInitData(initData, secretKey, 24*time.Hour)
		assert.ErrorIs(t, err, ErrInvalidInitData, "initData: %q", initData)
		assert.Nil(t, user)
	}
}
