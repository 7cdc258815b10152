package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func (h ApiHandler) chat(c *gin.Context) {
	var requestBody chatRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	response, err := h.GptRepository.Chat(c, requestBody.Message)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, chatResponse{Response: response})
}

func (h ApiHandler) chatQuery(c *gin.Context) {
	message := c.Query("message")
	if message == "" {
		returnErrorJsonCode(fmt.Errorf("message query param is required"), c, 400)
		return
	}

	response, err := h.GptRepository.Chat(c, message)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, chatResponse{Response: response})
}
