package controller

import (
	"encoding/xml"

	"career-companion-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	IncomingMessage(ctx *fiber.Ctx) error
}

type webhookController struct {
	service   service.IAdvisorService
	plainText bool
}

// NewWebhookController serves the messaging-platform webhook. With plainText
// set the reply degrades from TwiML markup to text/plain.
func NewWebhookController(service service.IAdvisorService, plainText bool) IWebhookController {
	return &webhookController{service: service, plainText: plainText}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/webhook")
	h.Post("/sms", c.IncomingMessage)
}

// twimlResponse is the minimal messaging reply envelope Twilio expects.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// IncomingMessage always answers 200; any failure is embedded in the message
// text so the messaging platform relays it to the user.
func (c *webhookController) IncomingMessage(ctx *fiber.Ctx) error {
	from := ctx.FormValue("From")
	body := ctx.FormValue("Body")

	text := c.service.Menu(ctx.Context(), from, body)

	if c.plainText {
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return ctx.SendString(text)
	}

	payload, err := xml.Marshal(twimlResponse{Message: text})
	if err != nil {
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return ctx.SendString(text)
	}
	ctx.Set(fiber.HeaderContentType, "application/xml")
	return ctx.SendString(xml.Header + string(payload))
}
