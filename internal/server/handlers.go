package server

import (
	"bytes"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"shapeview/internal/config"
	"shapeview/internal/geom"
	"shapeview/internal/render"
	"shapeview/internal/shape"
)

// ============================================================
// Payloads
// ============================================================

type pointJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type boxJSON struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type shapeJSON struct {
	Kind     string      `json:"kind"`
	X        int         `json:"x"`
	Y        int         `json:"y"`
	Z        int         `json:"z"`
	Color    string      `json:"color"`
	Width    int         `json:"width,omitempty"`
	Height   int         `json:"height,omitempty"`
	Vertices []pointJSON `json:"vertices,omitempty"`
	Hitbox   boxJSON     `json:"hitbox"`
}

type parseResponse struct {
	Shapes []shapeJSON        `json:"shapes"`
	Errors []shape.ParseError `json:"errors"`
	Bundle shape.Bundle       `json:"bundle"`
}

func toJSON(s shape.Shape) shapeJSON {
	b := s.Common()
	out := shapeJSON{Kind: s.Kind().String(), X: b.X, Y: b.Y, Z: b.Z, Color: b.Color, Hitbox: boxFrom(s.HitRegion())}
	if r, ok := s.(*shape.Rectangle); ok {
		out.Width, out.Height = r.Width, r.Height
	}
	for _, v := range shape.Vertices(s) {
		out.Vertices = append(out.Vertices, pointJSON{X: v.X, Y: v.Y})
	}
	return out
}

func boxFrom(b geom.Box) boxJSON {
	return boxJSON{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// ============================================================
// Handlers
// ============================================================

type Handler struct {
	cfg *config.Config
	log *slog.Logger
}

// Parse responds with the accepted shapes, the rejected lines and the bundle
// a viewer would show.
func (h *Handler) Parse(c fiber.Ctx) error {
	res, b := shape.Load(string(c.Body()))
	h.log.Info("[PARSE] parsed", "id", requestID(c), "shapes", len(res.Shapes), "errors", len(res.Errors))

	resp := parseResponse{Shapes: make([]shapeJSON, 0, len(res.Shapes)), Errors: res.Errors, Bundle: b}
	if resp.Errors == nil {
		resp.Errors = []shape.ParseError{}
	}
	for _, s := range res.Shapes {
		resp.Shapes = append(resp.Shapes, toJSON(s))
	}
	return c.JSON(resp)
}

// Format responds with the serialized form of the accepted shapes.
func (h *Handler) Format(c fiber.Ctx) error {
	res := shape.Parse(string(c.Body()))
	c.Set("X-Parse-Errors", strconv.Itoa(len(res.Errors)))
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(shape.Serialize(res.Shapes))
}

// Render responds with a PNG of the shapes. Rejected lines are counted in
// X-Parse-Errors and the rest still render.
func (h *Handler) Render(c fiber.Ctx) error {
	w, err := h.dimension(c.Query("width"), 512)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid width"})
	}
	ht, err := h.dimension(c.Query("height"), 512)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid height"})
	}
	backend := c.Query("backend", h.cfg.Backend)

	res, _ := shape.Load(string(c.Body()))
	eng, err := render.NewEngine(backend, w, ht, h.log)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer eng.Close()

	if err := eng.Paint(w, ht, res.Shapes); err != nil {
		h.log.Error("[RENDER] paint failed", "id", requestID(c), "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, eng.Surface); err != nil {
		h.log.Error("[RENDER] encode failed", "id", requestID(c), "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	h.log.Info("[RENDER] rendered", "id", requestID(c), "backend", backend, "width", w, "height", ht, "shapes", len(res.Shapes))
	c.Set("X-Parse-Errors", strconv.Itoa(len(res.Errors)))
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}

func (h *Handler) dimension(q string, def int) (int, error) {
	if q == "" {
		return def, nil
	}
	n, err := strconv.Atoi(q)
	if err != nil {
		return 0, err
	}
	if n <= 0 || n > h.cfg.MaxRenderSize {
		return 0, strconv.ErrRange
	}
	return n, nil
}
