package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PagesHandler serves the static informational pages. Content is fixed at
// build time; there is nothing to fetch.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

type pageResponse struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

var staticPages = map[string]pageResponse{
	"faq": {
		Slug:  "faq",
		Title: "الأسئلة الشائعة",
		Body:  "كيف أطلب توصيلاً؟ تصفح الفئات، اختر المتجر المناسب، وأكمل الطلب. كيف أضيف متجري أو عقاري؟ سجّل الدخول ثم أضفه من لوحة التحكم.",
	},
	"support": {
		Slug:  "support",
		Title: "الدعم الفني",
		Body:  "فريق الدعم متاح يومياً. راسلنا عبر البريد الإلكتروني وسنرد خلال يوم عمل واحد.",
	},
	"privacy": {
		Slug:  "privacy",
		Title: "سياسة الخصوصية",
		Body:  "نحتفظ ببياناتك لتشغيل الخدمة فقط ولا نشاركها مع أي طرف ثالث دون موافقتك.",
	},
}

// Get handles GET /v1/pages/:slug.
//
// @Summary      Fetch a static informational page
// @Tags         pages
// @Produce      json
// @Param        slug  path      string  true  "faq, support, or privacy"
// @Success      200   {object}  pageResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/pages/{slug} [get]
func (h *PagesHandler) Get(c echo.Context) error {
	page, ok := staticPages[c.Param("slug")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "page not found")
	}
	return c.JSON(http.StatusOK, page)
}
