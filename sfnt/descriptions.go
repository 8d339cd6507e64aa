/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfnt

import (
	"golang.org/x/text/language"
)

// Languages in which atom type descriptions are available. The first one is the fallback.
var descriptionLanguages = []language.Tag{
	language.English,
	language.Chinese,
}

var descriptionMatcher = language.NewMatcher(descriptionLanguages)

// Chinese descriptions of the atom types.
var atomDescriptionsZh = [numAtomTypes]string{
	TypeUint8:        "8位无符号整数",
	TypeInt8:         "8位整数",
	TypeUint16:       "16位无符号整数",
	TypeInt16:        "16位整数",
	TypeUint24:       "24位无符号整数",
	TypeUint32:       "32位无符号整数",
	TypeInt32:        "32位整数",
	TypeFixed:        "32位定点数，高16位整数，低16位小数",
	TypeFWord:        "int16类型，以字体设计单位计量",
	TypeUFWord:       "uint16类型，以字体设计单位计量",
	TypeF2Dot14:      "16位定点数，高2位整数，低14位小数",
	TypeLongDateTime: "时间日期，用从1904-01-01午夜12:00开始经过的秒数表示，是64位有符号整数",
	TypeTag:          "4个uint8组成的数组，用于区分table等对象",
	TypeOffset16:     "短偏移量，实际是uint16",
	TypeOffset32:     "长偏移量，实际是uint32",
}

// DescriptionIn returns the description of `t` in the supported language closest to `lang`,
// falling back to English.
func (t AtomType) DescriptionIn(lang language.Tag) string {
	if !t.Valid() {
		return ""
	}
	_, idx, conf := descriptionMatcher.Match(lang)
	if conf == language.No {
		idx = 0
	}
	if idx == 1 {
		return atomDescriptionsZh[t]
	}
	return atomTypes[t].desc
}

// ParseLanguage parses a BCP 47 tag such as "en" or "zh-Hans" for use with DescriptionIn.
// An empty string selects English.
func ParseLanguage(s string) (language.Tag, error) {
	if s == "" {
		return language.English, nil
	}
	return language.Parse(s)
}
