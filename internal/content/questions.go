package content

import "github.com/greenhope/everrich/internal/quiz"

// Questions returns the diagnostic questionnaire in display order.
func Questions() []quiz.Question {
	return []quiz.Question{
		{
			Position: 1,
			Category: "Experience",
			Prompt:   "您投资的主要目的是什么？",
			Options: []quiz.Option{
				{Label: "资产保值，不愿承受任何损失", Score: 1},
				{Label: "适度增值，能接受小幅波动", Score: 3},
				{Label: "追求高回报，能接受较大的本金波动", Score: 5,
					Warning: "高回报通常伴随本金的大幅回撤"},
			},
		},
		{
			Position: 2,
			Category: "Logic",
			Prompt:   "您的投资期限通常是多久？",
			Options: []quiz.Option{
				{Label: "1年以内", Score: 1,
					Warning: "短期资金不宜配置波动较大的资产"},
				{Label: "1-5年", Score: 3},
				{Label: "5年以上", Score: 5},
			},
		},
		{
			Position: 3,
			Category: "Psychology",
			Prompt:   "如果您的投资在一个月内下跌了20%，您会？",
			Options: []quiz.Option{
				{Label: "立即卖出，避免更多损失", Score: 1},
				{Label: "保持观望，等待回升", Score: 3},
				{Label: "逢低买入，摊薄成本", Score: 5,
					Warning: "加仓前请确认有充足的应急现金流"},
			},
		},
	}
}

// Advice returns the allocation suggestion shown with a diagnostic result.
func Advice(c quiz.Category) string {
	switch c {
	case quiz.Conservative:
		return "建议重点配置：现金管理(10%) + 定期寿险/健康险(30%) + 固定收益类资产(60%)。"
	case quiz.Balanced:
		return "建议重点配置：稳健共同基金(40%) + 分红险/债券(40%) + 现金及保障(20%)。"
	case quiz.Aggressive:
		return "建议重点配置：全球股票基金(40%) + 债券类基金(30%) + 固定资产/保障(30%)。"
	case quiz.Speculative:
		return "建议重点配置：成长型股权(30%) + 全球多策略基金(40%) + 另类资产(30%)。"
	default:
		return ""
	}
}
