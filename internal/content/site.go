// Package content holds the static copy and tables rendered by the site.
// All accessors return fresh slices; callers may not mutate shared state.
package content

// Profile describes the advisor shown in the header, hero and footer.
type Profile struct {
	Name      string
	Brand     string
	Role      string
	Headline  string
	Highlight string
	Pitch     string
	Badge     string
}

// Account is one of the five life accounts.
type Account struct {
	Title string
	Desc  string
}

// VIPRight is one VIP benefit. Value is an optional worth annotation in HKD.
type VIPRight struct {
	ID    int
	Title string
	Desc  string
	Value string
}

// Stat is a headline number on the about section.
type Stat struct {
	Value string
	Label string
}

// Contact lists the advisor's reachable channels.
type Contact struct {
	Address string
	Phone   string
	Email   string
}

// Advisor returns the advisor profile.
func Advisor() Profile {
	return Profile{
		Name:      "池望青 Francis Chi",
		Brand:     "GREENHOPE EVERRICH",
		Role:      "FAMILY FINANCIAL PLANNER",
		Headline:  "构筑您的",
		Highlight: "幸福五大账户",
		Pitch:     "我是家庭财务策划师池望青，以保险工具为核心底层，搭配多品类金融工具及协议，为您提供稀缺价值的家庭资产配置方案。",
		Badge:     "家族办公室高级总监 | CFA | HSUHK Master",
	}
}

// Accounts returns the five accounts in display order.
func Accounts() []Account {
	return []Account{
		{Title: "健康账户", Desc: "早预防、早治疗、健康保险专属基金"},
		{Title: "理财账户", Desc: "稳健增值，抵御通胀，构筑财务安全边际"},
		{Title: "成长账户", Desc: "教育金、婚嫁金、创业金，陪伴孩子每一阶段"},
		{Title: "养老账户", Desc: "品质退休规划，确保被动收入与生命等长"},
		{Title: "传承账户", Desc: "家族系图规划，股权与资产的合规安全延续"},
	}
}

// AccountsIntro is the lead paragraph above the five accounts.
const AccountsIntro = "我们不仅是在管理财富，更是在规划幸福的人生。通过五个维度的账户管理，确保家庭在每一个生命周期都有尊严。"

// VIPIntro is the lead paragraph above the VIP benefits.
const VIPIntro = "签约即享价值 16,800 HKD 的专属家庭财务规划服务，涵盖全球资产配置与管家式托付。"

// VIPRights returns the VIP benefits in display order.
func VIPRights() []VIPRight {
	return []VIPRight{
		{ID: 1, Title: "家族系图", Desc: "明确每位成员健康、保障、担心和心愿规划扫描"},
		{ID: 2, Title: "资产盘点", Desc: "对现有资产进行短、中、长及风险盘点，4+1模型分析"},
		{ID: 3, Title: "未来现金流规划", Desc: "针对教育、医疗、创业及养老传承的现金流设计"},
		{ID: 4, Title: "家族保单托管", Desc: "一站式全球保单权益查询、管理、理赔闭环（价值8000元）", Value: "8000"},
		{ID: 5, Title: "全球保险+投资方案", Desc: "大陆/HK/新加坡/US等全球资产配置与DIY定制"},
		{ID: 6, Title: "香港银行卡", Desc: "解决跨境资金流动性规划，主流银行协助开户"},
		{ID: 7, Title: "HK证券+数字货币", Desc: "协助开户及海外博主特权，对接全球金融市场"},
		{ID: 8, Title: "日本健康及Family Office", Desc: "赴日精密体检、跨境税务、投资与身份规划建议"},
	}
}

// Partners returns the partner institutions.
func Partners() []string {
	return []string{
		"AIA", "Prudential", "Manulife", "AXA", "BlackRock", "Morgan Stanley", "Fidelity", "JP Morgan",
	}
}

// Credentials returns the advisor's qualifications.
func Credentials() []string {
	return []string{
		"CFA 特许金融分析师",
		"香港IIQE/MPF 全科持牌",
		"MDRT 百万圆桌 TOT 会员",
		"高级DRM认证风险管理师",
		"HSUHK 创业管理理学硕士",
		"四川省高端医疗第1名(2022)",
	}
}

// Bio returns the about-section paragraphs.
func Bio() []string {
	return []string{
		"我是池望青，拥有日本早稻田大学与电子科技大学双硕士学位，是特许金融分析师(CFA)协会会员。目前担任胤源全球华人家族办公室高级总监。",
		"我的服务不仅在于销售产品，而在于“以人为本”的资产配置诊断(4+1诊断模型)，通过解决法律隔离、资金路径隔离、CRS门槛等专业维度，为您构筑真正的财富安全岛。",
	}
}

// Stats returns the about-section headline numbers.
func Stats() []Stat {
	return []Stat{
		{Value: "140+", Label: "合作机构"},
		{Value: "1000+", Label: "定制方案"},
		{Value: "TOP 1%", Label: "行业服务水平"},
	}
}

// ContactInfo returns the office contact details.
func ContactInfo() Contact {
	return Contact{
		Address: "香港九龍尖沙咀海港城海洋中心601室",
		Phone:   "+852 6264 4926 / +86 139 8175 8590",
		Email:   "francis.chi@greenhope.com.hk",
	}
}

// FooterLinks returns the footer navigation labels.
func FooterLinks() []string {
	return []string{"个人简介", "服务体系", "风险评估", "隐私条款"}
}

const (
	Copyright       = "© 2025 GREENHOPE EVERRICH. All rights reserved."
	Disclaimer      = "本站数据及建议仅供参考，不作为最终投资决策依据。"
	Confidentiality = "我们将严格遵守《保密协议》，保护您的隐私安全。"
)

// PrivacyNotice returns the paragraphs of the privacy page.
func PrivacyNotice() []string {
	return []string{
		"本工具不保存任何个人资料。问卷答案与资产光谱仅保存在本次会话的内存中，退出即清除。",
		"提交咨询时，系统仅生成一封预填邮件草稿并交由您的默认邮件客户端处理，是否发送由您决定。",
		Confidentiality,
	}
}
