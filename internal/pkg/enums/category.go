package enums

import (
	"fmt"
	"strings"
)

// Category 帖子分类（封闭枚举，非法值必须在边界处直接报错）
type Category string

const (
	CategoryTechnology    Category = "TECHNOLOGY"
	CategorySports        Category = "SPORTS"
	CategoryMusic         Category = "MUSIC"
	CategoryEducation     Category = "EDUCATION"
	CategoryHealth        Category = "HEALTH"
	CategoryTravel        Category = "TRAVEL"
	CategoryGaming        Category = "GAMING"
	CategoryFood          Category = "FOOD"
	CategoryBusiness      Category = "BUSINESS"
	CategoryMovies        Category = "MOVIES"
	CategoryFitness       Category = "FITNESS"
	CategoryArt           Category = "ART"
	CategoryScience       Category = "SCIENCE"
	CategoryBooks         Category = "BOOKS"
	CategoryAutomobile    Category = "AUTOMOBILE"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryProgramming   Category = "PROGRAMMING"
	CategoryLifestyle     Category = "LIFESTYLE"
	CategoryOther         Category = "OTHER"
)

var allCategories = []Category{
	CategoryTechnology, CategorySports, CategoryMusic, CategoryEducation,
	CategoryHealth, CategoryTravel, CategoryGaming, CategoryFood,
	CategoryBusiness, CategoryMovies, CategoryFitness, CategoryArt,
	CategoryScience, CategoryBooks, CategoryAutomobile, CategoryEntertainment,
	CategoryProgramming, CategoryLifestyle, CategoryOther,
}

// ParseCategory 大小写不敏感地解析分类，未知值返回错误
func ParseCategory(value string) (Category, error) {
	upper := Category(strings.ToUpper(strings.TrimSpace(value)))
	for _, c := range allCategories {
		if c == upper {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %s", value)
}

// ParseCategoryList 解析逗号分隔的分类串（用户偏好字段的存储格式）
func ParseCategoryList(value string) ([]Category, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	categories := make([]Category, 0, len(parts))
	for _, p := range parts {
		c, err := ParseCategory(p)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

// JoinCategories 将分类集合编码为逗号分隔串
func JoinCategories(categories []Category) string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return strings.Join(names, ",")
}
