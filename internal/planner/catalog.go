package planner

import (
	"strings"

	"AI-TRAVEL-PLANNER_BACK-END/internal/models"
)

// stylePool keeps insertion order so pool flattening is deterministic.
type stylePool struct {
	style      string
	activities []string
}

var stylePools = []stylePool{
	{models.StyleCuisine, []string{"当地特色餐厅", "美食街探索", "海鲜市场", "小吃街", "特色咖啡馆"}},
	{models.StyleCulture, []string{"博物馆", "历史古迹", "传统村落", "寺庙", "艺术展览"}},
	{models.StyleNature, []string{"国家公园", "海滩", "徒步路线", "湖泊", "瀑布"}},
	{models.StyleShopping, []string{"购物中心", "当地市场", "特色商店", "免税店", "夜市"}},
	{models.StyleLeisure, []string{"SPA", "温泉", "主题公园", "游船", "高尔夫"}},
}

// cityTemplates holds pre-authored day plans for known destinations.
// The slice index is day-1; cities may cover fewer days than requested.
type cityTemplates struct {
	city string
	days [][]models.Activity
}

var knownCities = []cityTemplates{
	{
		city: "上海",
		days: [][]models.Activity{
			{
				{Time: "09:00", Title: "上海博物馆", Description: "参观中国四大博物馆之一", Location: "上海市黄浦区人民大道201号", Coordinates: []float64{121.472644, 31.231706}, Cost: 0},
				{Time: "12:00", Title: "南京路午餐", Description: "品尝上海特色美食", Location: "南京东路步行街", Coordinates: []float64{121.472898, 31.234111}, Cost: 80},
				{Time: "14:00", Title: "外滩观光", Description: "欣赏黄浦江两岸风光", Location: "外滩风景区", Coordinates: []float64{121.490023, 31.240054}, Cost: 0},
				{Time: "17:00", Title: "豫园游览", Description: "体验江南古典园林", Location: "豫园商城", Coordinates: []float64{121.492057, 31.227239}, Cost: 40},
				{Time: "19:00", Title: "陆家嘴夜景", Description: "观赏上海摩天大楼夜景", Location: "陆家嘴金融区", Coordinates: []float64{121.507681, 31.239787}, Cost: 0},
			},
			{
				{Time: "10:00", Title: "迪士尼乐园", Description: "全天畅游迪士尼", Location: "上海迪士尼度假区", Coordinates: []float64{121.667201, 31.143385}, Cost: 475},
				{Time: "20:00", Title: "迪士尼烟花表演", Description: "观看梦幻烟花秀", Location: "上海迪士尼度假区", Coordinates: []float64{121.667201, 31.143385}, Cost: 0},
			},
			{
				{Time: "09:30", Title: "田子坊", Description: "探索文艺小资街区", Location: "田子坊", Coordinates: []float64{121.471977, 31.222626}, Cost: 0},
				{Time: "12:30", Title: "新天地午餐", Description: "在石库门建筑群中用餐", Location: "新天地", Coordinates: []float64{121.475145, 31.223667}, Cost: 120},
				{Time: "14:30", Title: "上海当代艺术博物馆", Description: "参观现代艺术展览", Location: "上海当代艺术博物馆", Coordinates: []float64{121.492986, 31.224869}, Cost: 50},
				{Time: "16:30", Title: "徐家汇商圈", Description: "购物休闲", Location: "徐家汇", Coordinates: []float64{121.433957, 31.192911}, Cost: 0},
			},
		},
	},
	{
		city: "北京",
		days: [][]models.Activity{
			{
				{Time: "08:30", Title: "天安门广场", Description: "参观世界最大的城市广场", Location: "天安门广场", Coordinates: []float64{116.397128, 39.908722}, Cost: 0},
				{Time: "09:30", Title: "故宫博物院", Description: "游览明清皇宫", Location: "故宫博物院", Coordinates: []float64{116.397128, 39.916345}, Cost: 60},
				{Time: "12:30", Title: "景山公园", Description: "俯瞰故宫全景", Location: "景山公园", Coordinates: []float64{116.397285, 39.923629}, Cost: 2},
			},
		},
	},
}

// Catalog provides activity candidates and destination templates.
// All lookups are pure; the catalog holds no mutable state.
type Catalog struct{}

// NewCatalog creates a new Catalog instance
func NewCatalog() *Catalog {
	return &Catalog{}
}

// ActivitiesFor returns the candidate pool for a travel style.
// An unknown style yields nil, not an error.
func (c *Catalog) ActivitiesFor(style string) []string {
	for _, p := range stylePools {
		if p.style == style {
			return p.activities
		}
	}
	return nil
}

// AllActivities returns every catalog activity in fixed style order.
func (c *Catalog) AllActivities() []string {
	var all []string
	for _, p := range stylePools {
		all = append(all, p.activities...)
	}
	return all
}

// TemplatesFor returns the pre-authored activity list for a destination and
// day. The second return reports whether the destination matched a known
// city. For a matched city with fewer template days than requested, the day
// is clamped to the last available template; day 1 is the ultimate fallback.
// Unmatched destinations fall back to the default (Shanghai) day-1 set.
func (c *Catalog) TemplatesFor(destination string, day int) ([]models.Activity, bool) {
	for _, ct := range knownCities {
		if strings.Contains(destination, ct.city) {
			idx := day
			if idx > len(ct.days) {
				idx = len(ct.days)
			}
			if idx < 1 {
				idx = 1
			}
			return ct.days[idx-1], true
		}
	}
	return knownCities[0].days[0], false
}

// CityCenter returns the first template coordinate of a known city, used as a
// geocoding fallback when no map service is configured.
func (c *Catalog) CityCenter(destination string) (string, []float64, bool) {
	for _, ct := range knownCities {
		if strings.Contains(destination, ct.city) {
			first := ct.days[0][0]
			return first.Location, first.Coordinates, true
		}
	}
	return "", nil, false
}
