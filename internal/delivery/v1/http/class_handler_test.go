package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejarat-tech/catalog-backend/internal/repository/memcache"
	"github.com/tejarat-tech/catalog-backend/internal/repository/memtree"
	"github.com/tejarat-tech/catalog-backend/internal/usecase"
	"github.com/tejarat-tech/catalog-backend/pkg/logger"
)

func setupRouter() *chi.Mux {
	log := logger.NewSlogLogger()
	store := memtree.NewStore()
	cache := memcache.New(time.Minute)

	hierarchyUC := usecase.NewHierarchyUseCase(
		store.Classes(),
		store.ClassAttributes(),
		store.AttributeTypes(),
		store.Bindings(),
		nil,
		cache,
		memtree.NewTransactor(),
		nil,
		log,
		50,
	)
	attrTypeUC := usecase.NewAttributeTypeUseCase(store.AttributeTypes(), memtree.NewTransactor(), log)

	mux := chi.NewRouter()
	NewRouter(mux, log).Init(hierarchyUC, attrTypeUC)
	return mux
}

func performRequest(t *testing.T, mux http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(dst))
}

func createClassHTTP(t *testing.T, mux http.Handler, body map[string]interface{}) classResponse {
	t.Helper()

	w := performRequest(t, mux, http.MethodPost, "/api/v1/classes", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp classResponse
	decodeBody(t, w, &resp)
	return resp
}

func TestClassLifecycleOverHTTP(t *testing.T) {
	mux := setupRouter()

	root := createClassHTTP(t, mux, map[string]interface{}{
		"store_id": 1, "name": "electronics", "price": "500000",
	})
	assert.Equal(t, 1, root.Depth)
	assert.True(t, root.IsLeaf)
	require.NotNil(t, root.Price)
	assert.Equal(t, int64(500_000), *root.Price)

	phones := createClassHTTP(t, mux, map[string]interface{}{
		"store_id": 1, "name": "phones", "parent_id": root.ID,
	})
	assert.Equal(t, 2, phones.Depth)

	t.Run("profile inherits price", func(t *testing.T) {
		w := performRequest(t, mux, http.MethodGet, fmt.Sprintf("/api/v1/classes/%d/profile", phones.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp profileResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, int64(500_000), resp.Price)
		require.NotNil(t, resp.PriceClassID)
		assert.Equal(t, root.ID, *resp.PriceClassID)
	})

	t.Run("set and clear price", func(t *testing.T) {
		w := performRequest(t, mux, http.MethodPut, fmt.Sprintf("/api/v1/classes/%d/price", phones.ID),
			map[string]interface{}{"price": "300000"})
		require.Equal(t, http.StatusOK, w.Code)

		w = performRequest(t, mux, http.MethodPut, fmt.Sprintf("/api/v1/classes/%d/price", phones.ID),
			map[string]interface{}{"price": nil})
		require.Equal(t, http.StatusOK, w.Code)

		w = performRequest(t, mux, http.MethodPut, fmt.Sprintf("/api/v1/classes/%d/price", phones.ID),
			map[string]interface{}{"price": "99.90"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("children and ancestors", func(t *testing.T) {
		w := performRequest(t, mux, http.MethodGet, fmt.Sprintf("/api/v1/classes/%d/children", root.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var children []classResponse
		decodeBody(t, w, &children)
		require.Len(t, children, 1)
		assert.Equal(t, phones.ID, children[0].ID)

		w = performRequest(t, mux, http.MethodGet,
			fmt.Sprintf("/api/v1/classes/%d/ancestors?include_self=true", phones.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var chain []classResponse
		decodeBody(t, w, &chain)
		require.Len(t, chain, 2)
		assert.Equal(t, phones.ID, chain[0].ID)
		assert.Equal(t, root.ID, chain[1].ID)
	})

	t.Run("delete guarded then allowed", func(t *testing.T) {
		w := performRequest(t, mux, http.MethodDelete, fmt.Sprintf("/api/v1/classes/%d", root.ID), nil)
		assert.Equal(t, http.StatusConflict, w.Code)

		w = performRequest(t, mux, http.MethodDelete, fmt.Sprintf("/api/v1/classes/%d", phones.ID), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestMoveClassOverHTTP(t *testing.T) {
	mux := setupRouter()

	root := createClassHTTP(t, mux, map[string]interface{}{"store_id": 1, "name": "root"})
	branch := createClassHTTP(t, mux, map[string]interface{}{"store_id": 1, "name": "branch", "parent_id": root.ID})
	leaf := createClassHTTP(t, mux, map[string]interface{}{"store_id": 1, "name": "leaf", "parent_id": branch.ID})

	t.Run("cycle returns conflict", func(t *testing.T) {
		w := performRequest(t, mux, http.MethodPatch, fmt.Sprintf("/api/v1/classes/%d/move", branch.ID),
			map[string]interface{}{"new_parent_id": leaf.ID})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown parent returns unprocessable", func(t *testing.T) {
		w := performRequest(t, mux, http.MethodPatch, fmt.Sprintf("/api/v1/classes/%d/move", leaf.ID),
			map[string]interface{}{"new_parent_id": 9999})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("valid move", func(t *testing.T) {
		w := performRequest(t, mux, http.MethodPatch, fmt.Sprintf("/api/v1/classes/%d/move", leaf.ID),
			map[string]interface{}{"new_parent_id": root.ID})
		assert.Equal(t, http.StatusOK, w.Code)

		w = performRequest(t, mux, http.MethodGet, fmt.Sprintf("/api/v1/classes/%d/descendants", root.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var ids []int64
		decodeBody(t, w, &ids)
		assert.ElementsMatch(t, []int64{branch.ID, leaf.ID}, ids)
	})
}

func TestBindingOverHTTP(t *testing.T) {
	mux := setupRouter()

	root := createClassHTTP(t, mux, map[string]interface{}{"store_id": 1, "name": "root"})
	leaf := createClassHTTP(t, mux, map[string]interface{}{"store_id": 1, "name": "leaf", "parent_id": root.ID})

	const productID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	t.Run("can-bind reports non-leaf", func(t *testing.T) {
		w := performRequest(t, mux, http.MethodGet, fmt.Sprintf("/api/v1/classes/%d/can-bind", root.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		decodeBody(t, w, &resp)
		assert.Equal(t, false, resp["allowed"])
		assert.NotEmpty(t, resp["reason"])
	})

	t.Run("bind to non-leaf conflicts", func(t *testing.T) {
		w := performRequest(t, mux, http.MethodPost, "/api/v1/products/"+productID+"/binding",
			map[string]interface{}{"class_id": root.ID})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("bind unbind cycle", func(t *testing.T) {
		w := performRequest(t, mux, http.MethodPost, "/api/v1/products/"+productID+"/binding",
			map[string]interface{}{"class_id": leaf.ID})
		require.Equal(t, http.StatusCreated, w.Code)

		w = performRequest(t, mux, http.MethodPost, "/api/v1/products/"+productID+"/binding",
			map[string]interface{}{"class_id": leaf.ID})
		assert.Equal(t, http.StatusConflict, w.Code)

		w = performRequest(t, mux, http.MethodDelete, "/api/v1/products/"+productID+"/binding", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed product id", func(t *testing.T) {
		w := performRequest(t, mux, http.MethodPost, "/api/v1/products/not-a-uuid/binding",
			map[string]interface{}{"class_id": leaf.ID})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAttributeTypesOverHTTP(t *testing.T) {
	mux := setupRouter()

	var colorID int64
	t.Run("create choice type", func(t *testing.T) {
		w := performRequest(t, mux, http.MethodPost, "/api/v1/attribute-types", map[string]interface{}{
			"name": "color", "display_name": "Цвет", "kind": "choice", "choices": []string{"red", "blue"},
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp attributeTypeResponse
		decodeBody(t, w, &resp)
		colorID = resp.ID
		assert.Equal(t, []string{"red", "blue"}, resp.Choices)
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		w := performRequest(t, mux, http.MethodPost, "/api/v1/attribute-types", map[string]interface{}{
			"name": "weird", "kind": "float128",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		w := performRequest(t, mux, http.MethodPost, "/api/v1/attribute-types", map[string]interface{}{
			"name": "color", "kind": "text",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("add choice value", func(t *testing.T) {
		w := performRequest(t, mux, http.MethodPost, fmt.Sprintf("/api/v1/attribute-types/%d/choices", colorID),
			map[string]interface{}{"value": "green"})
		require.Equal(t, http.StatusOK, w.Code)

		w = performRequest(t, mux, http.MethodPost, fmt.Sprintf("/api/v1/attribute-types/%d/choices", colorID),
			map[string]interface{}{"value": "green"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("attribute on class validates default value", func(t *testing.T) {
		class := createClassHTTP(t, mux, map[string]interface{}{"store_id": 1, "name": "shirts"})

		w := performRequest(t, mux, http.MethodPost, fmt.Sprintf("/api/v1/classes/%d/attributes", class.ID),
			map[string]interface{}{"attribute_type_id": colorID, "default_value": "purple"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = performRequest(t, mux, http.MethodPost, fmt.Sprintf("/api/v1/classes/%d/attributes", class.ID),
			map[string]interface{}{"attribute_type_id": colorID, "default_value": "green", "inheritable": true})
		require.Equal(t, http.StatusCreated, w.Code)

		// Тип теперь используется, переопределение запрещено.
		w = performRequest(t, mux, http.MethodPut, fmt.Sprintf("/api/v1/attribute-types/%d", colorID),
			map[string]interface{}{"name": "color", "kind": "text"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
