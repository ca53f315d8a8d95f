package menuControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/rakibwebdev23/Bistro-Restaurant-Server/database"
)

func patchMenuItem(t *testing.T, store *database.Store, id, payload string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/menu/"+id, bytes.NewReader([]byte(payload)))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: id}}
	UpdateMenuItem(store)(c)
	return w
}

func TestUpdateMenuItemWhitelist(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("only whitelisted fields reach the store", func(mt *mtest.T) {
		store := database.NewStoreWithDatabase(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		id := primitive.NewObjectID().Hex()
		w := patchMenuItem(mt.T, store, id, `{"price": 9.5, "category": "Dessert", "_id": "ignored", "rating": 5}`)

		require.Equal(mt, http.StatusOK, w.Code, w.Body.String())

		event := mt.GetStartedEvent()
		require.NotNil(mt, event)
		require.Equal(mt, "update", event.CommandName)

		set := event.Command.Lookup("updates", "0", "u", "$set")
		doc, ok := set.DocumentOK()
		require.True(mt, ok)

		elems, err := doc.Elements()
		require.NoError(mt, err)
		keys := make([]string, 0, len(elems))
		for _, e := range elems {
			keys = append(keys, e.Key())
		}
		assert.ElementsMatch(mt, []string{"price", "category"}, keys)
	})

	mt.Run("missing id is a zero-matched result", func(mt *mtest.T) {
		store := database.NewStoreWithDatabase(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		id := primitive.NewObjectID().Hex()
		w := patchMenuItem(mt.T, store, id, `{"name": "Gone"}`)

		require.Equal(mt, http.StatusOK, w.Code, w.Body.String())

		var result struct {
			MatchedCount  int64
			ModifiedCount int64
		}
		require.NoError(mt, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Zero(mt, result.MatchedCount)
		assert.Zero(mt, result.ModifiedCount)
	})

	mt.Run("empty payload rejected", func(mt *mtest.T) {
		store := database.NewStoreWithDatabase(mt.DB)

		id := primitive.NewObjectID().Hex()
		w := patchMenuItem(mt.T, store, id, `{}`)

		assert.Equal(mt, http.StatusBadRequest, w.Code)
	})
}
