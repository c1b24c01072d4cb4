package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nuelxcodev/luxe/internal/adapter/http/middleware"
	"github.com/nuelxcodev/luxe/internal/usecase"
)

type AssistantHandler struct {
	assistant *usecase.Assistant
	catalog   usecase.Catalog
}

func NewAssistantHandler(assistant *usecase.Assistant, catalog usecase.Catalog) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, catalog: catalog}
}

type contactJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Status      string `json:"status"`
	LastMessage string `json:"lastMessage"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	IsVerified  bool   `json:"isVerified"`
}

func (h *AssistantHandler) Contacts(c *gin.Context) {
	contacts := h.catalog.Contacts()
	out := make([]contactJSON, 0, len(contacts))
	for _, ct := range contacts {
		out = append(out, contactJSON{
			ID:          ct.ID,
			Name:        ct.Name,
			Avatar:      ct.Avatar,
			Status:      ct.Status,
			LastMessage: ct.LastMessage,
			Time:        ct.Time,
			Type:        string(ct.Type),
			IsVerified:  ct.IsVerified,
		})
	}
	c.JSON(http.StatusOK, gin.H{"contacts": out})
}

func (h *AssistantHandler) History(c *gin.Context) {
	sess, _ := middleware.Session(c)

	contactID := c.Param("contactId")
	if _, ok := h.catalog.ContactByID(contactID); !ok {
		respondErr(c, usecase.ErrContactNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": toChatMessagesJSON(sess.ChatHistory(contactID))})
}

type chatRequest struct {
	Text    string `json:"text" binding:"required"`
	Persona string `json:"persona"`
}

// Chat appends the user's message to the thread and asks the assistant for
// a reply in the contact's persona.
func (h *AssistantHandler) Chat(c *gin.Context) {
	sess, _ := middleware.Session(c)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	reply, err := h.assistant.Chat(c.Request.Context(), sess, c.Param("contactId"), usecase.Persona(req.Persona), req.Text)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toChatMessageJSON(reply))
}

type searchRequest struct {
	Query string `json:"query" binding:"required"`
}

type searchResponse struct {
	Text      string         `json:"text"`
	Citations []citationJSON `json:"citations"`
}

// Search never fails from the client's point of view; collaborator errors
// collapse into the fallback text.
func (h *AssistantHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res := h.assistant.Search(c.Request.Context(), req.Query)
	c.JSON(http.StatusOK, searchResponse{
		Text:      res.Text,
		Citations: toCitationsJSON(res.Citations),
	})
}
