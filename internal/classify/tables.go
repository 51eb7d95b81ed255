package classify

// Built-in mapping tables from Qianji category names to the internal
// two-level hierarchy. Keys are both sub-category and top-level names as
// they appear in real exports.

var defaultExpenseTable = map[string]CategoryPair{
	// 餐饮
	"餐饮": {Parent: "餐饮", Child: DefaultChildName},
	"早餐": {Parent: "餐饮", Child: "早餐"},
	"午餐": {Parent: "餐饮", Child: "午餐"},
	"晚餐": {Parent: "餐饮", Child: "晚餐"},
	"外卖": {Parent: "餐饮", Child: "外卖"},
	"买菜": {Parent: "餐饮", Child: "买菜"},
	"零食": {Parent: "餐饮", Child: "零食"},
	"饮料": {Parent: "餐饮", Child: "饮料"},

	// 购物
	"购物":  {Parent: "购物", Child: DefaultChildName},
	"日用品": {Parent: "购物", Child: "日用品"},
	"服饰":  {Parent: "购物", Child: "服饰"},
	"数码":  {Parent: "购物", Child: "数码"},
	"美妆":  {Parent: "购物", Child: "美妆"},
	"家居":  {Parent: "购物", Child: "家居"},

	// 交通
	"交通":   {Parent: "交通", Child: DefaultChildName},
	"打车":   {Parent: "交通", Child: "打车"},
	"公交":   {Parent: "交通", Child: "公共交通"},
	"地铁":   {Parent: "交通", Child: "公共交通"},
	"加油":   {Parent: "交通", Child: "加油"},
	"停车":   {Parent: "交通", Child: "停车"},
	"火车":   {Parent: "交通", Child: "长途出行"},
	"机票":   {Parent: "交通", Child: "长途出行"},

	// 居住
	"居住":  {Parent: "居住", Child: DefaultChildName},
	"房租":  {Parent: "居住", Child: "房租"},
	"房贷":  {Parent: "居住", Child: "房贷"},
	"水电煤": {Parent: "居住", Child: "水电煤"},
	"物业":  {Parent: "居住", Child: "物业"},

	// 娱乐
	"娱乐": {Parent: "娱乐", Child: DefaultChildName},
	"电影": {Parent: "娱乐", Child: "电影"},
	"游戏": {Parent: "娱乐", Child: "游戏"},
	"旅行": {Parent: "娱乐", Child: "旅行"},
	"运动": {Parent: "娱乐", Child: "运动"},

	// 医疗健康
	"医疗": {Parent: "医疗健康", Child: DefaultChildName},
	"药品": {Parent: "医疗健康", Child: "药品"},
	"看病": {Parent: "医疗健康", Child: "门诊"},
	"体检": {Parent: "医疗健康", Child: "体检"},

	// 教育
	"教育": {Parent: "教育", Child: DefaultChildName},
	"学习": {Parent: "教育", Child: DefaultChildName},
	"书籍": {Parent: "教育", Child: "书籍"},
	"课程": {Parent: "教育", Child: "课程"},

	// 通讯
	"通讯": {Parent: "通讯", Child: DefaultChildName},
	"话费": {Parent: "通讯", Child: "话费"},
	"网费": {Parent: "通讯", Child: "网费"},

	// 人情往来
	"人情": {Parent: "人情往来", Child: DefaultChildName},
	"红包": {Parent: "人情往来", Child: "红包"},
	"礼物": {Parent: "人情往来", Child: "礼物"},
	"请客": {Parent: "人情往来", Child: "请客"},

	// 宠物
	"宠物": {Parent: "宠物", Child: DefaultChildName},

	// 其他
	"其他": {Parent: "其他", Child: DefaultChildName},
}

var defaultIncomeTable = map[string]CategoryPair{
	"工资": {Parent: "工资", Child: DefaultChildName},
	"薪资": {Parent: "工资", Child: DefaultChildName},
	"奖金": {Parent: "工资", Child: "奖金"},
	"年终奖": {Parent: "工资", Child: "年终奖"},

	"理财": {Parent: "投资理财", Child: "收益"},
	"基金": {Parent: "投资理财", Child: "基金"},
	"股票": {Parent: "投资理财", Child: "股票"},
	"利息": {Parent: "投资理财", Child: "利息"},

	"兼职": {Parent: "兼职", Child: DefaultChildName},
	"外快": {Parent: "兼职", Child: DefaultChildName},

	"报销": {Parent: "其他收入", Child: "报销"},
	"退款": {Parent: "其他收入", Child: "退款"},
	"收红包": {Parent: "其他收入", Child: "红包"},
	"二手": {Parent: "其他收入", Child: "二手闲置"},
	"其他": {Parent: "其他收入", Child: DefaultChildName},
}

// Icon suggestions keyed by category name. Both parent and child names may
// appear; SuggestCategoryIcon prefers the child.
var categoryIcons = map[string]string{
	"餐饮": "🍚", "早餐": "🥐", "午餐": "🍱", "晚餐": "🍜", "外卖": "🛵",
	"买菜": "🥬", "零食": "🍪", "饮料": "🧋",
	"购物": "🛒", "日用品": "🧻", "服饰": "👕", "数码": "📱", "美妆": "💄", "家居": "🛋",
	"交通": "🚗", "打车": "🚕", "公共交通": "🚇", "加油": "⛽", "停车": "🅿️", "长途出行": "🚄",
	"居住": "🏠", "房租": "🔑", "房贷": "🏦", "水电煤": "💡", "物业": "🏢",
	"娱乐": "🎮", "电影": "🎬", "游戏": "🕹", "旅行": "🧳", "运动": "⚽",
	"医疗健康": "💊", "药品": "💊", "门诊": "🏥", "体检": "🩺",
	"教育": "📚", "书籍": "📖", "课程": "🎓",
	"通讯": "📡", "话费": "📞", "网费": "🌐",
	"人情往来": "🎁", "红包": "🧧", "礼物": "🎁", "请客": "🍻",
	"宠物": "🐱",
	"工资": "💰", "奖金": "🏆", "年终奖": "🎊",
	"投资理财": "📈", "收益": "📈", "基金": "📊", "股票": "📉", "利息": "🪙",
	"兼职": "💼", "其他收入": "💸", "报销": "🧾", "二手闲置": "♻️",
	"其他": "📝",
}

// Color suggestions keyed by parent category name.
var categoryColors = map[string]string{
	"餐饮":   "#FF9800",
	"购物":   "#E91E63",
	"交通":   "#2196F3",
	"居住":   "#795548",
	"娱乐":   "#9C27B0",
	"医疗健康": "#F44336",
	"教育":   "#3F51B5",
	"通讯":   "#00BCD4",
	"人情往来": "#FF5722",
	"宠物":   "#FFC107",
	"工资":   "#4CAF50",
	"投资理财": "#009688",
	"兼职":   "#607D8B",
	"其他收入": "#8BC34A",
	"其他":   "#9E9E9E",
}

const (
	defaultCategoryIcon  = "📝"
	defaultCategoryColor = "#9E9E9E"
)
