package route

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qdto "problems_service/internals/features/qa/dto"
	helper "problems_service/internals/helpers"
	"problems_service/internals/testutil"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	QARoutes(app, testutil.OpenTestDB(t))
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v), string(b))
	return v
}

func createQuestion(t *testing.T, app *fiber.App, text string) qdto.QuestionResponse {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"text": text})
	status, b := do(t, app, http.MethodPost, "/questions/", string(body))
	require.Equal(t, http.StatusCreated, status, string(b))
	return decode[qdto.QuestionResponse](t, b)
}

func TestWalkthrough(t *testing.T) {
	app := newTestApp(t)

	q := createQuestion(t, app, "Вопрос?")
	assert.NotZero(t, q.ID)
	assert.Equal(t, "Вопрос?", q.Text)
	assert.NotNil(t, q.Answers)
	assert.Empty(t, q.Answers)
	assert.Equal(t, 0, q.AnswersCount)

	status, b := do(t, app, http.MethodPost, fmt.Sprintf("/questions/%d/answers/", q.ID), `{"user_id":"u1","text":"Ответ"}`)
	require.Equal(t, http.StatusCreated, status, string(b))
	a := decode[qdto.AnswerResponse](t, b)
	assert.Equal(t, q.ID, a.QuestionID)
	assert.Equal(t, "u1", a.UserID)

	status, b = do(t, app, http.MethodGet, fmt.Sprintf("/questions/%d/", q.ID), "")
	require.Equal(t, http.StatusOK, status)
	detail := decode[qdto.QuestionResponse](t, b)
	require.Len(t, detail.Answers, 1)
	assert.Equal(t, a.ID, detail.Answers[0].ID)
	assert.Equal(t, "Ответ", detail.Answers[0].Text)
	assert.Equal(t, 1, detail.AnswersCount)

	status, b = do(t, app, http.MethodGet, fmt.Sprintf("/answers/%d/", a.ID), "")
	require.Equal(t, http.StatusOK, status)
	got := decode[qdto.AnswerResponse](t, b)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, a.Text, got.Text)
	assert.WithinDuration(t, a.CreatedAt, got.CreatedAt, time.Millisecond)

	status, b = do(t, app, http.MethodDelete, fmt.Sprintf("/questions/%d/", q.ID), "")
	assert.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, b)

	status, _ = do(t, app, http.MethodGet, fmt.Sprintf("/answers/%d/", a.ID), "")
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = do(t, app, http.MethodGet, fmt.Sprintf("/questions/%d/", q.ID), "")
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = do(t, app, http.MethodDelete, fmt.Sprintf("/questions/%d/", q.ID), "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateQuestion_Validation(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"blank", `{"text":""}`, "text"},
		{"whitespace", `{"text":"   "}`, "text"},
		{"missing", `{}`, "text"},
		{"too long", fmt.Sprintf(`{"text":%q}`, strings.Repeat("q", 1001)), "text"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, b := do(t, app, http.MethodPost, "/questions/", tc.body)
			require.Equal(t, http.StatusBadRequest, status, string(b))
			resp := decode[helper.ErrorResponse](t, b)
			assert.Equal(t, "VALIDATION_ERROR", resp.ErrorCode)
			assert.NotEmpty(t, resp.Errors[tc.field])
		})
	}

	status, b := do(t, app, http.MethodGet, "/questions/", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, decode[qdto.QuestionPage](t, b).Count)
}

func TestCreateQuestion_MalformedJSON(t *testing.T) {
	app := newTestApp(t)
	status, b := do(t, app, http.MethodPost, "/questions/", `{"text":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", decode[helper.ErrorResponse](t, b).ErrorCode)
}

func TestCreateAnswer_MissingQuestion(t *testing.T) {
	app := newTestApp(t)
	status, b := do(t, app, http.MethodPost, "/questions/999999/answers/", `{"user_id":"u1","text":"t"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode[helper.ErrorResponse](t, b).ErrorCode)

	status, _ = do(t, app, http.MethodGet, "/answers/1/", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateAnswer_UserIDLength(t *testing.T) {
	app := newTestApp(t)
	q := createQuestion(t, app, "q")
	target := fmt.Sprintf("/questions/%d/answers/", q.ID)

	for _, id := range []string{uuid.NewString(), strings.Repeat("z", 36)} {
		status, b := do(t, app, http.MethodPost, target, fmt.Sprintf(`{"user_id":%q,"text":"ok"}`, id))
		assert.Equal(t, http.StatusCreated, status, string(b))
	}

	status, b := do(t, app, http.MethodPost, target, fmt.Sprintf(`{"user_id":%q,"text":"ok"}`, strings.Repeat("z", 37)))
	require.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, decode[helper.ErrorResponse](t, b).Errors["user_id"])

	status, b = do(t, app, http.MethodPost, target, `{"text":"ok"}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, []string{"This field is required."}, decode[helper.ErrorResponse](t, b).Errors["user_id"])

	status, b = do(t, app, http.MethodGet, fmt.Sprintf("/questions/%d/", q.ID), "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, decode[qdto.QuestionResponse](t, b).AnswersCount)
}

func TestDeleteAnswer_KeepsQuestion(t *testing.T) {
	app := newTestApp(t)
	q := createQuestion(t, app, "q")

	_, b := do(t, app, http.MethodPost, fmt.Sprintf("/questions/%d/answers/", q.ID), `{"user_id":"u","text":"a"}`)
	a := decode[qdto.AnswerResponse](t, b)

	status, _ := do(t, app, http.MethodDelete, fmt.Sprintf("/answers/%d/", a.ID), "")
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = do(t, app, http.MethodDelete, fmt.Sprintf("/answers/%d/", a.ID), "")
	assert.Equal(t, http.StatusNotFound, status)

	status, b = do(t, app, http.MethodGet, fmt.Sprintf("/questions/%d/", q.ID), "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, decode[qdto.QuestionResponse](t, b).AnswersCount)
}

func TestListPagination(t *testing.T) {
	app := newTestApp(t)

	status, b := do(t, app, http.MethodGet, "/questions/", "")
	require.Equal(t, http.StatusOK, status)
	empty := decode[qdto.QuestionPage](t, b)
	assert.EqualValues(t, 0, empty.Count)
	assert.Nil(t, empty.Next)
	assert.Nil(t, empty.Previous)
	assert.Empty(t, empty.Results)

	for i := 0; i < 25; i++ {
		createQuestion(t, app, fmt.Sprintf("q%d", i))
	}

	status, b = do(t, app, http.MethodGet, "/questions/", "")
	require.Equal(t, http.StatusOK, status)
	p1 := decode[qdto.QuestionPage](t, b)
	assert.EqualValues(t, 25, p1.Count)
	assert.Len(t, p1.Results, 20)
	assert.Equal(t, "q0", p1.Results[0].Text)
	require.NotNil(t, p1.Next)
	assert.Equal(t, "http://example.com/questions/?page=2", *p1.Next)
	assert.Nil(t, p1.Previous)

	status, b = do(t, app, http.MethodGet, "/questions/?page=2", "")
	require.Equal(t, http.StatusOK, status)
	p2 := decode[qdto.QuestionPage](t, b)
	assert.Len(t, p2.Results, 5)
	assert.Equal(t, "q20", p2.Results[0].Text)
	assert.Nil(t, p2.Next)
	require.NotNil(t, p2.Previous)
	assert.Equal(t, "http://example.com/questions/", *p2.Previous)

	for _, bad := range []string{"3", "0", "-1", "abc"} {
		status, _ = do(t, app, http.MethodGet, "/questions/?page="+bad, "")
		assert.Equal(t, http.StatusNotFound, status, "page=%s", bad)
	}
}

func TestNonNumericIDsAreNotFound(t *testing.T) {
	app := newTestApp(t)
	for _, target := range []string{"/questions/abc/", "/answers/abc/", "/questions/0/"} {
		status, _ := do(t, app, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, status, target)
	}
	status, _ := do(t, app, http.MethodPost, "/questions/abc/answers/", `{"user_id":"u","text":"t"}`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestTrailingSlashOptional(t *testing.T) {
	app := newTestApp(t)
	q := createQuestion(t, app, "q")

	status, _ := do(t, app, http.MethodGet, fmt.Sprintf("/questions/%d", q.ID), "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = do(t, app, http.MethodGet, "/questions", "")
	assert.Equal(t, http.StatusOK, status)
}
