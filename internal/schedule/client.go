package schedule

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

const defaultBaseURL = "https://vnz.osvita.net/WidgetSchedule.asmx/GetScheduleDataX"

const defaultVuzID = 11613

// DateLayout — формат дат, который требует виджет расписания
const DateLayout = "02.01.2006"

// Служебные поля виджета, которые не нужны клиенту: дискриминатор типа
// и дублирующая запись преподавателя
var excludedFields = [...]string{"__type", "employee"}

// Row — сырая строка расписания из внешнего API
type Row = map[string]interface{}

// Degraded — ответ внешнего API, который не удалось разобрать как JSON.
// Отдаётся мини-приложению как есть вместо ошибки: баннер вместо падения.
type Degraded struct {
	Error string `json:"error"`
	Raw   string `json:"raw"`
}

// Client — клиент виджета расписания vnz.osvita.net. Создаётся один раз в main
// и передаётся явно; держит собственный http.Client с таймаутом и лимитом
// соединений к общему стороннему сервису.
type Client struct {
	baseURL    string
	vuzID      int
	httpClient *http.Client
}

func NewClient() *Client {
	baseURL := os.Getenv("SCHEDULE_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	vuzID := defaultVuzID
	if value := os.Getenv("VUZ_ID"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			vuzID = parsed
		}
	}

	return &Client{
		baseURL: baseURL,
		vuzID:   vuzID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				MaxConnsPerHost:     10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Close освобождает соединения клиента при остановке сервера
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// FetchRows запрашивает строки расписания группы за период. Идентификатор группы
// и даты передаются в двойных кавычках — так требует контракт виджета.
// Тело, которое не разбирается как JSON, возвращается как Degraded без ошибки.
func (c *Client) FetchRows(ctx context.Context, siteID, startDate, endDate string) ([]Row, *Degraded, error) {
	params := url.Values{}
	params.Set("aVuzID", strconv.Itoa(c.vuzID))
	params.Set("aStudyGroupID", `"`+siteID+`"`)
	params.Set("aStartDate", `"`+startDate+`"`)
	params.Set("aEndDate", `"`+endDate+`"`)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:143.0) Gecko/20100101 Firefox/143.0")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	var envelope struct {
		D []Row `json:"d"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &Degraded{Error: "Cannot parse JSON from API", Raw: string(body)}, nil
	}

	rows := envelope.D
	if rows == nil {
		rows = []Row{}
	}
	for _, row := range rows {
		for _, field := range excludedFields {
			delete(row, field)
		}
	}
	return rows, nil, nil
}

// DefaultWeekRange возвращает период "сегодня — ближайшая суббота";
// если сегодня суббота, берётся суббота следующей недели
func DefaultWeekRange(now time.Time) (string, string) {
	days := (int(time.Saturday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return now.Format(DateLayout), now.AddDate(0, 0, days).Format(DateLayout)
}
