package model

// CompanyRecord 规范化后的企业记录（加载后只读）
type CompanyRecord struct {
	CompanyName    string  `json:"company_name"`
	Ticker         string  `json:"ticker"`
	Sector         *string `json:"sector"`
	Rank           *int    `json:"rank"`
	About          *string `json:"about"`
	PresentInIndia *string `json:"present_in_india"`
	PresentInTN    *string `json:"present_in_tn"`
	RankColor      string  `json:"rank_color"`
}

// Clone 深拷贝，调用方修改副本不会影响数据集
func (r CompanyRecord) Clone() CompanyRecord {
	out := r
	out.Sector = cloneString(r.Sector)
	out.About = cloneString(r.About)
	out.PresentInIndia = cloneString(r.PresentInIndia)
	out.PresentInTN = cloneString(r.PresentInTN)
	if r.Rank != nil {
		v := *r.Rank
		out.Rank = &v
	}
	return out
}

// Facets 下拉筛选项
type Facets struct {
	Sectors []string `json:"sectors"`
	Ranks   []int    `json:"ranks"`
}

// CompanyQuery 查询条件，空字符串表示不过滤
type CompanyQuery struct {
	Sector string `form:"sector"`
	Rank   string `form:"rank"`
	Search string `form:"q"`
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
