package types

// Stock avatars assigned by the system before any user upload. The neutral
// silhouette is a self-contained data URL so the seed record renders without
// network access; the gendered ones are remote dicebear references.
const (
	MaleAvatar    = "https://api.dicebear.com/7.x/avataaars/svg?seed=Brian&top=shortHair,shortHairTheCaesar,shortHairFrizzle&clothing=blazerAndShirt,collarAndSweater&accessories=glasses,none&facialHair=beardLight,beardMedium,mustache"
	FemaleAvatar  = "https://api.dicebear.com/7.x/avataaars/svg?seed=Jessica&top=longHair,longHairBob,longHairStraight,longHairCurly&clothing=blazerAndShirt,collarAndSweater&accessories=glasses,none&facialHairProbability=0"
	NeutralAvatar = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iMjAwIiBoZWlnaHQ9IjIwMCIgdmlld0JveD0iMCAwIDIwMCAyMDAiIGZpbGw9Im5vbmUiIHhtbG5zPSJodHRwOi8vd3d3LnczLm9yZy8yMDAwL3N2ZyI+CjxyZWN0IHdpZHRoPSIyMDAiIGhlaWdodD0iMjAwIiBmaWxsPSIjRjNGNEY2Ii8+CjxwYXRoIGZpbGwtcnVsZT0iZXZlbm9kZCIgY2xpcC1ydWxlPSJldmVub2RkIiBkPSJNMTAwIDQ1QzgzLjQzMTUgNDUgNzAgNTguNDMxNSA3MCA3NUM3MCA5MS41Njg1IDgzLjQzMTUgMTA1IDEwMCAxMDVDMTE2LjU2OSAxMDUgMTMwIDkxLjU2ODUgMTMwIDc1QzEzMCA1OC40MzE1IDExNi41NjkgNDUgMTAwIDQ1Wk02MCAxNzAuNUM2MCAxNDguMTM0IDc3LjkwODYgMTMwIDEwMCAxMzBDMTIyLjA5MSAxMzAgMTQwIDE0OC4xMzQgMTQwIDE3MC41VjE4NUMxNDAgMTkzLjI4NCAxMzMuMjg0IDIwMCAxMjUgMjAwSDc1QzY2LjcxNTcgMjAwIDYwIDE5My4yODQgNjAgMTg1VjE3MC41WiIgZmlsbD0iIzlDQTNBRiIvPgo8L3N2Zz4K"
)

// SeedName is the localized placeholder name restored when the mode switches
// back to domestic.
const SeedName = "张三"

// DefaultAvatar returns the stock avatar for a gender.
func DefaultAvatar(g Gender) string {
	if g == GenderFemale {
		return FemaleAvatar
	}
	return MaleAvatar
}

// FallbackName is the fixed English name used when name generation fails or
// returns an empty result.
func FallbackName(g Gender) string {
	if g == GenderFemale {
		return "Jane Doe"
	}
	return "John Doe"
}

// InspirationalQuotes rotate in the editor header. Decorative only.
var InspirationalQuotes = []string{
	"星光不问赶路人，时光不负有心人。",
	"海阔凭鱼跃，天高任鸟飞。",
	"路虽远，行则将至；事虽难，做则必成。",
	"不积跬步，无以至千里；不积小流，无以成江海。",
	"长风破浪会有时，直挂云帆济沧海。",
	"每一个不曾起舞的日子，都是对生命的辜负。",
	"种一棵树最好的时间是十年前，其次是现在。",
	"既然选择了远方，便只顾风雨兼程。",
	"追逐梦想的道路上，你我皆是黑马。",
	"相信自己，你比想象中更强大。",
}

// Templates is the immutable gallery catalog, initialized once at startup.
var Templates = []TemplateConfig{
	{ID: TemplateClassic, Name: "经典商务", Description: "传统稳重，清晰的上下结构", AccentColor: "#1d4ed8"},
	{ID: TemplateModern, Name: "现代侧栏", Description: "左深色侧栏，高对比度", AccentColor: "#1e293b"},
	{ID: TemplateMinimal, Name: "极简主义", Description: "大量留白，注重排版", AccentColor: "#1f2937"},
	{ID: TemplateBanner, Name: "精英通栏", Description: "顶部视觉冲击，双栏布局", AccentColor: "#312e81"},
	{ID: TemplateCreative, Name: "创意设计", Description: "活泼配色，网格化布局", AccentColor: "#14b8a6"},
	{ID: TemplateProfessional, Name: "专业学术", Description: "衬线字体，适合严谨行业", AccentColor: "#065f46"},
	{ID: TemplateTech, Name: "极客技术", Description: "代码风格，极客最爱", AccentColor: "#18181b"},
	{ID: TemplateTimeline, Name: "时光轨迹", Description: "时间轴可视化，强调历程", AccentColor: "#ea580c"},
	{ID: TemplateCorporate, Name: "外企风范", Description: "双栏结构，专业干练", AccentColor: "#4b5563"},
	{ID: TemplateElegant, Name: "优雅质感", Description: "精致衬线，极简排版", AccentColor: "#9f1239"},
}

// KnownTemplate reports whether id is one of the catalog entries.
func KnownTemplate(id TemplateID) bool {
	for _, t := range Templates {
		if t.ID == id {
			return true
		}
	}
	return false
}

// SeedData returns a fresh copy of the default résumé record every session
// starts from.
func SeedData() ResumeData {
	return ResumeData{
		Mode: ModeDomestic,
		PersonalInfo: PersonalInfo{
			Name:            SeedName,
			Avatar:          NeutralAvatar,
			AvatarIsDefault: true,
			Banner:          "",
			JobTitle:        "测试工程师",
			YearsExp:        "3年经验",
			Gender:          GenderMale,
			Phone:           "13800138000",
			Email:           "zhangsan@example.com",
			Location:        "北京",
		},
		Skills: Skills{
			Style: SkillStyleTags,
			List:  []string{"Python", "Java", "Selenium", "PyTest", "Jenkins", "Docker", "MySQL", "Postman", "JIRA"},
			Text:  "熟悉软件测试理论和方法，熟练使用Selenium进行自动化测试。\n掌握Python/Java编程语言，能够编写自动化测试脚本。\n熟悉CI/CD流程，具备Jenkins持续集成实践经验。",
		},
		Education: []Education{
			{
				ID:        "edu-1",
				School:    "北京理工大学",
				Major:     "软件工程",
				Degree:    "本科",
				DateRange: "2016.09 - 2020.06",
			},
		},
		Work: []WorkExperience{
			{
				ID:        "work-1",
				Company:   "某知名互联网公司",
				JobTitle:  "中级测试工程师",
				DateRange: "2022.07 - 至今",
			},
			{
				ID:        "work-2",
				Company:   "某科技初创企业",
				JobTitle:  "软件测试工程师",
				DateRange: "2020.07 - 2022.06",
			},
		},
		Projects: []ProjectExperience{
			{
				ID:               "proj-1",
				Name:             "电商后台自动化测试框架",
				DateRange:        "2023.01 - 2023.08",
				Intro:            "针对电商后台管理系统构建的自动化测试框架，旨在提高回归测试效率。",
				Responsibilities: "基于Selenium+PyTest搭建UI自动化框架，覆盖核心业务流程。集成Jenkins实现每日构建和自动报告生成，回归测试时间缩短60%。",
			},
			{
				ID:               "proj-2",
				Name:             "支付网关接口压测",
				DateRange:        "2022.09 - 2022.12",
				Intro:            "双十一大促前对支付网关进行全链路压测，保障系统高并发下的稳定性。",
				Responsibilities: "使用JMeter编写压测脚本，模拟高并发场景。分析性能瓶颈，协助开发优化数据库连接池配置，系统TPS提升30%。",
			},
		},
	}
}
