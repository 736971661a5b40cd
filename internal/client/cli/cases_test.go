package cli

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_List_RendersOneCardPerCase(t *testing.T) {
	h := newHarness(t, "", map[string]reply{
		"GET /api/cases": {body: listSample},
	}, "")

	require.NoError(t, h.app.List(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Sample\n")
	assert.Equal(t, 1, strings.Count(out, "ID: "))
	assert.Contains(t, out, "ID: 1\n")
	assert.Contains(t, out, "1 case(s)")
	assert.Equal(t, []string{"GET /api/cases"}, h.be.calls())
}

func TestApp_List_ServedFromCacheUntilInvalidated(t *testing.T) {
	h := newHarness(t, "", map[string]reply{
		"GET /api/cases": {body: listSample},
	}, "")
	ctx := context.Background()

	require.NoError(t, h.app.List(ctx))
	require.NoError(t, h.app.List(ctx))

	assert.Equal(t, []string{"GET /api/cases"}, h.be.calls())
}

func TestApp_List_Empty(t *testing.T) {
	h := newHarness(t, "", map[string]reply{
		"GET /api/cases": {body: `{"status":"success","results":0,"cases":[]}`},
	}, "")

	require.NoError(t, h.app.List(context.Background()))
	assert.Contains(t, h.out.String(), "No cases yet")
}

func TestApp_List_ErrorNotification(t *testing.T) {
	h := newHarness(t, "", map[string]reply{
		"GET /api/cases": {status: http.StatusServiceUnavailable, body: `{"detail":"backend is down"}`},
	}, "")

	err := h.app.List(context.Background())

	require.Error(t, err)
	assert.Contains(t, h.out.String(), "[error] backend is down")
}

func TestApp_Delete_ConfirmedRefetchesAndWarns(t *testing.T) {
	h := newHarness(t, "y\n", map[string]reply{
		"GET /api/cases":      {body: listSample},
		"DELETE /api/cases/1": {status: http.StatusNoContent},
	}, "tok")
	ctx := context.Background()

	require.NoError(t, h.app.List(ctx))
	require.NoError(t, h.app.Delete(ctx, "1"))

	assert.Equal(t, []string{"GET /api/cases", "DELETE /api/cases/1", "GET /api/cases"}, h.be.calls())
	assert.Contains(t, h.out.String(), "Are you sure")
	assert.Contains(t, h.out.String(), "[warning] Case deleted successfully")
}

func TestApp_Delete_PromptsForMissingID(t *testing.T) {
	h := newHarness(t, "1\nyes\n", map[string]reply{
		"GET /api/cases":      {body: listSample},
		"DELETE /api/cases/1": {status: http.StatusNoContent},
	}, "")

	require.NoError(t, h.app.Delete(context.Background(), ""))
	assert.Contains(t, h.be.calls(), "DELETE /api/cases/1")
}

func TestApp_DeclinedActionsMakeNoCall(t *testing.T) {
	answers := []string{"n", "no", "", "maybe", "yep"}
	for _, answer := range answers {
		t.Run("delete "+answer, func(t *testing.T) {
			h := newHarness(t, answer+"\n", map[string]reply{}, "")

			require.NoError(t, h.app.Delete(context.Background(), "1"))

			assert.Empty(t, h.be.calls())
			assert.NotContains(t, h.out.String(), "[warning]")
		})
		t.Run("test "+answer, func(t *testing.T) {
			h := newHarness(t, answer+"\n", map[string]reply{}, "")

			require.NoError(t, h.app.Test(context.Background(), "1"))

			assert.Empty(t, h.be.calls())
			assert.Contains(t, h.out.String(), "Begin Test?")
			assert.NotContains(t, h.out.String(), "[warning]")
		})
	}
}

func TestApp_Test_Confirmed(t *testing.T) {
	h := newHarness(t, "YES\n", map[string]reply{
		"GET /api/cases":        {body: listSample},
		"GET /api/cases/1/test": {body: `{"status":"success"}`},
	}, "")

	require.NoError(t, h.app.Test(context.Background(), "1"))

	assert.Equal(t, []string{"GET /api/cases/1/test", "GET /api/cases"}, h.be.calls())
	assert.Contains(t, h.out.String(), "[warning] Test Case successfully")
}

func TestApp_Create_Success(t *testing.T) {
	h := newHarness(t, "T\nh\n/u\nGET\n{}\n200\n", map[string]reply{
		"GET /api/cases":   {body: listSample},
		"POST /api/cases/": {status: http.StatusCreated, body: `{"status":"success","case":{"id":"2","title":"T"}}`},
	}, "")

	require.NoError(t, h.app.Create(context.Background()))

	assert.Equal(t, []string{"POST /api/cases/", "GET /api/cases"}, h.be.calls())
	body := h.be.body("POST /api/cases/")
	assert.JSONEq(t, `{"title":"T","host":"h","uri":"/u","method":"GET","request_body":"{}","expected_result":"200"}`, body)
	assert.Contains(t, h.out.String(), "[success] Case created successfully")
	assert.Nil(t, h.app.draft)
}

func TestApp_Create_RawFreeText(t *testing.T) {
	input := strings.Join([]string{
		"T", "h", "/u", "GET",
		"<<", "{", `  "a": 1 `, "}", ".",
		"<<", "-", ".",
	}, "\n") + "\n"
	h := newHarness(t, input, map[string]reply{
		"GET /api/cases":   {body: listSample},
		"POST /api/cases/": {status: http.StatusCreated, body: `{"status":"success","case":{"id":"2","title":"T"}}`},
	}, "")

	require.NoError(t, h.app.Create(context.Background()))

	assert.Contains(t, h.out.String(), "Request Body ('<<' for raw input)")
	assert.JSONEq(t, `{"title":"T","host":"h","uri":"/u","method":"GET","request_body":"{\n  \"a\": 1 \n}","expected_result":"-"}`,
		h.be.body("POST /api/cases/"))
}

func TestApp_Create_InlineErrorsThenResubmit(t *testing.T) {
	input := strings.Join([]string{
		"", "h", "/u", "GET", "", "",
		"T", "", "", "", "", "",
	}, "\n") + "\n"
	h := newHarness(t, input, map[string]reply{
		"GET /api/cases":   {body: listSample},
		"POST /api/cases/": {status: http.StatusCreated, body: `{"status":"success","case":{"id":"2","title":"T"}}`},
	}, "")

	require.NoError(t, h.app.Create(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "  Title: Title is required")
	assert.NotContains(t, out, "Host is required")
	assert.Contains(t, out, "Host [h]")
	assert.Equal(t, []string{"POST /api/cases/", "GET /api/cases"}, h.be.calls())
	assert.JSONEq(t, `{"title":"T","host":"h","uri":"/u","method":"GET","request_body":"","expected_result":""}`,
		h.be.body("POST /api/cases/"))
}

func TestApp_Create_BackendFailureKeepsDraft(t *testing.T) {
	input := "T\nh\n/u\nGET\n\n\n" + "\n\n\n\n\n\n"
	h := newHarness(t, input, map[string]reply{
		"GET /api/cases":   {body: listSample},
		"POST /api/cases/": {status: http.StatusInternalServerError, body: `{"status":"error","message":"boom"}`},
	}, "")
	ctx := context.Background()

	err := h.app.Create(ctx)

	require.Error(t, err)
	assert.Contains(t, h.out.String(), "[error] boom")
	require.NotNil(t, h.app.draft)
	assert.Equal(t, "T", h.app.draft.Title)

	h.be.set("POST /api/cases/", reply{status: http.StatusCreated, body: `{"status":"success","case":{"id":"2","title":"T"}}`})
	require.NoError(t, h.app.Create(ctx))

	assert.Contains(t, h.out.String(), "Continuing the unsaved draft.")
	assert.Contains(t, h.out.String(), "[success] Case created successfully")
	assert.Nil(t, h.app.draft)
	assert.Contains(t, h.be.body("POST /api/cases/"), `"title":"T"`)
}

func TestApp_Edit_PrefillsAndUpdates(t *testing.T) {
	h := newHarness(t, "New\n\n\n-\n\n\n"+"\n\n\nPOST\n\n\n", map[string]reply{
		"GET /api/cases":     {body: listSample},
		"GET /api/cases/1":   {body: `{"status":"success","case":{"id":"1","title":"Old","host":"h","uri":"/u","method":"GET","request_body":"{}"}}`},
		"PATCH /api/cases/1": {body: `{"status":"success","case":{"id":"1","title":"New"}}`},
	}, "")

	require.NoError(t, h.app.Edit(context.Background(), "1"))

	out := h.out.String()
	assert.Contains(t, out, "Title [Old]")
	assert.Contains(t, out, "  Method: Method is required")
	assert.Contains(t, out, "[success] Case updated successfully")
	assert.Equal(t, []string{"GET /api/cases/1", "PATCH /api/cases/1", "GET /api/cases"}, h.be.calls())
	assert.JSONEq(t, `{"title":"New","host":"h","uri":"/u","method":"POST","request_body":"{}","expected_result":""}`,
		h.be.body("PATCH /api/cases/1"))
}

func TestApp_Edit_UnknownCase(t *testing.T) {
	h := newHarness(t, "", map[string]reply{
		"GET /api/cases/9": {status: http.StatusNotFound, body: `{"status":"fail","message":"No case with ID: 9 found"}`},
	}, "")

	err := h.app.Edit(context.Background(), "9")

	require.Error(t, err)
	assert.Contains(t, h.out.String(), "[error] No case with ID: 9 found")
	assert.Equal(t, []string{"GET /api/cases/9"}, h.be.calls())
}

func TestApp_ShowAndResult(t *testing.T) {
	h := newHarness(t, "", map[string]reply{
		"GET /api/cases/1": {body: `{"status":"success","case":{"id":"1","title":"Sample","host":"http://x","uri":"/ping","method":"GET","expected_result":"pong","createdAt":"2022-04-29T10:00:00Z"}}`},
		"GET /api/cases/2": {body: `{"status":"success","case":{"id":"2","title":"Ran","category":"passed","content":"pong"}}`},
	}, "")
	ctx := context.Background()

	require.NoError(t, h.app.Show(ctx, "1"))
	out := h.out.String()
	assert.Contains(t, out, "URL: http://x/ping")
	assert.Contains(t, out, "Created: April 29th, 2022")

	require.NoError(t, h.app.Result(ctx, "1"))
	assert.Contains(t, h.out.String(), "No result recorded yet")

	require.NoError(t, h.app.Result(ctx, "2"))
	assert.Contains(t, h.out.String(), "Category: passed")
}

func TestApp_Show_EmptyIDPrompt(t *testing.T) {
	h := newHarness(t, "\n", map[string]reply{}, "")

	err := h.app.Show(context.Background(), "")

	require.ErrorIs(t, err, errNoID)
	assert.Empty(t, h.be.calls())
}
