package generator

// GivenNameSyllables are joined (one or two at a time) into a given name.
var GivenNameSyllables = []string{
	"wei", "min", "jie", "hao", "qiang", "jun", "yan", "fang", "juan", "ting",
	"lei", "chao", "yang", "ping", "gang", "hua", "tao", "yi", "chen", "yue",
	"feng", "yu", "bin", "jing", "lin", "xin", "bo", "ming", "jian", "hong",
	"xu", "shu", "ying", "rong", "yuan", "xiang", "xi", "zen", "ran", "han",
	"zi", "mu", "xiao", "fan", "yao", "mo", "kun", "peng", "zhao", "dan",
}

// FamilyNames contains repeated entries on purpose: a name listed twice is
// drawn twice as often.
var FamilyNames = []string{
	"li", "wang", "zhang", "liu", "chen", "yang", "zhao", "huang", "zhou", "wu",
	"xu", "sun", "hu", "zhu", "gao", "lin", "he", "guo", "ma", "luo",
	"liang", "song", "zheng", "xie", "han", "tang", "feng", "yu", "dong", "xiao",
	"cheng", "cao", "yuan", "deng", "xu", "fu", "shen", "zeng", "peng", "lv",
	"su", "lu", "jiang", "cai", "jia", "ding", "wei", "xue", "pan", "du",
	"dai", "xia", "zhong", "wang", "tian", "ren", "jiang", "fan", "fang", "shi",
	"yao", "tan", "liao", "zou", "xiong", "jin", "lu", "hao", "kong", "bai",
	"cui", "kang", "mao", "qiu", "qin", "jiang", "shi", "gu", "hou", "shao",
	"meng", "long", "wan", "duan", "lei", "qian", "tang", "yin", "li", "yi",
	"chang", "wu", "qiao", "he", "lai", "gong", "wen",
}
