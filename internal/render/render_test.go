package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderDeterministic(t *testing.T) {
	data := types.SeedData()
	first, err := Render(data, types.TemplateModern)
	require.NoError(t, err)
	second, err := Render(data, types.TemplateModern)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderUnknownTemplateFallsBackToClassic(t *testing.T) {
	data := types.SeedData()
	classic, err := Render(data, types.TemplateClassic)
	require.NoError(t, err)

	unknown, err := Render(data, types.TemplateID("does-not-exist"))
	require.NoError(t, err)
	assert.Equal(t, classic, unknown)

	empty, err := Render(data, types.TemplateID(""))
	require.NoError(t, err)
	assert.Equal(t, classic, empty)
}

func TestRenderFieldCoverageAllVariants(t *testing.T) {
	data := types.SeedData()
	data.PersonalInfo.Banner = "data:image/png;base64,AAAA"

	for _, cfg := range types.Templates {
		t.Run(string(cfg.ID), func(t *testing.T) {
			html, err := Render(data, cfg.ID)
			require.NoError(t, err)

			assert.Contains(t, html, data.PersonalInfo.Name)
			assert.Contains(t, html, data.PersonalInfo.JobTitle)
			assert.Contains(t, html, data.PersonalInfo.YearsExp)
			assert.Contains(t, html, data.PersonalInfo.Email)
			assert.Contains(t, html, data.PersonalInfo.Location)
			assert.Contains(t, html, "男")

			// Domestic mode shows the phone in every variant.
			assert.Contains(t, html, data.PersonalInfo.Phone)

			for _, edu := range data.Education {
				assert.Contains(t, html, edu.School)
				assert.Contains(t, html, edu.Major)
				assert.Contains(t, html, edu.DateRange)
			}
			for _, work := range data.Work {
				assert.Contains(t, html, work.Company)
				assert.Contains(t, html, work.JobTitle)
				assert.Contains(t, html, work.DateRange)
			}
			for _, proj := range data.Projects {
				assert.Contains(t, html, proj.Name)
				assert.Contains(t, html, proj.DateRange)
				assert.Contains(t, html, proj.Intro)
				assert.Contains(t, html, proj.Responsibilities)
			}
			for _, skill := range data.Skills.List {
				assert.Contains(t, html, skill)
			}
		})
	}
}

func TestRenderRemoteModeHidesPhoneAndAvatar(t *testing.T) {
	data := types.SeedData()
	data.Mode = types.ModeRemote
	data.PersonalInfo.Name = "John Doe"

	for _, cfg := range types.Templates {
		t.Run(string(cfg.ID), func(t *testing.T) {
			html, err := Render(data, cfg.ID)
			require.NoError(t, err)

			assert.NotContains(t, html, data.PersonalInfo.Phone)

			doc := parseHTML(t, html)
			doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
				src, _ := sel.Attr("src")
				assert.NotEqual(t, data.PersonalInfo.Avatar, src)
			})
		})
	}
}

func TestRenderDomesticModeShowsAvatar(t *testing.T) {
	data := types.SeedData()
	for _, cfg := range types.Templates {
		t.Run(string(cfg.ID), func(t *testing.T) {
			html, err := Render(data, cfg.ID)
			require.NoError(t, err)

			doc := parseHTML(t, html)
			found := false
			doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
				if src, _ := sel.Attr("src"); src == data.PersonalInfo.Avatar {
					found = true
				}
			})
			assert.True(t, found, "avatar img not rendered")
		})
	}
}

func TestRenderSkillStyleExclusive(t *testing.T) {
	data := types.SeedData()
	data.Skills.List = []string{"TAG_SENTINEL_ALPHA"}
	data.Skills.Text = "TEXT_SENTINEL_OMEGA"

	for _, cfg := range types.Templates {
		t.Run(string(cfg.ID)+"/tags", func(t *testing.T) {
			data.Skills.Style = types.SkillStyleTags
			html, err := Render(data, cfg.ID)
			require.NoError(t, err)
			assert.Contains(t, html, "TAG_SENTINEL_ALPHA")
			assert.NotContains(t, html, "TEXT_SENTINEL_OMEGA")
		})
		t.Run(string(cfg.ID)+"/text", func(t *testing.T) {
			data.Skills.Style = types.SkillStyleLines
			html, err := Render(data, cfg.ID)
			require.NoError(t, err)
			assert.Contains(t, html, "TEXT_SENTINEL_OMEGA")
			assert.NotContains(t, html, "TAG_SENTINEL_ALPHA")
		})
	}
}

func TestRenderDataURLAvatarNotSanitized(t *testing.T) {
	data := types.SeedData()
	require.True(t, strings.HasPrefix(data.PersonalInfo.Avatar, "data:image/"))

	html, err := Render(data, types.TemplateClassic)
	require.NoError(t, err)
	assert.NotContains(t, html, "ZgotmplZ")
	assert.Contains(t, html, data.PersonalInfo.Avatar)
}

func TestRenderBannerOnlyInBannerVariant(t *testing.T) {
	data := types.SeedData()
	data.PersonalInfo.Banner = "data:image/png;base64,BANNERPAYLOAD"

	html, err := Render(data, types.TemplateBanner)
	require.NoError(t, err)
	assert.Contains(t, html, "BANNERPAYLOAD")

	// Banner omitted entirely: no broken img element.
	data.PersonalInfo.Banner = ""
	html, err = Render(data, types.TemplateBanner)
	require.NoError(t, err)
	doc := parseHTML(t, html)
	doc.Find("img.backdrop").Each(func(_ int, sel *goquery.Selection) {
		t.Errorf("backdrop img rendered without banner set")
	})
}

func TestFullTitle(t *testing.T) {
	pi := types.PersonalInfo{JobTitle: "测试工程师", YearsExp: "3年经验"}
	assert.Equal(t, "测试工程师 | 3年经验", FullTitle(pi))
}

func TestGenderLabel(t *testing.T) {
	assert.Equal(t, "男", GenderLabel(types.GenderMale))
	assert.Equal(t, "女", GenderLabel(types.GenderFemale))
}
