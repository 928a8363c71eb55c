package static

import "kitten-shop/internal/domain/catalog"

// seed is the nursery's current litter. Photos: kot.pet.
var seed = []catalog.Cat{
	{
		ID:          1,
		Name:        "Амур",
		Breed:       "Донской сфинкс",
		Category:    catalog.CategoryMale,
		AgeMonths:   3,
		Gender:      catalog.GenderMale,
		Price:       35000,
		Color:       "Розово-персиковый",
		Vaccinated:  true,
		Pedigree:    true,
		Available:   true,
		Description: "Обаятельный котёнок с тёплой бархатистой кожей и огромными выразительными глазами. Невероятно ласковый и общительный — обожает сидеть на руках и мурлыкать. Идеально подходит для семей с детьми. Привит, обработан от паразитов, ветпаспорт и родословная WCF.",
		Image:       "https://kot.pet/images/parent-1.jpg",
	},
	{
		ID:          2,
		Name:        "Василиса",
		Breed:       "Донской сфинкс",
		Category:    catalog.CategoryFemale,
		AgeMonths:   4,
		Gender:      catalog.GenderFemale,
		Price:       38000,
		Color:       "Кремово-розовый",
		Vaccinated:  true,
		Pedigree:    true,
		Available:   true,
		Description: "Нежная и утончённая кошечка с шёлковистой тёплой кожей. Интерчемпион по стандартам WCF. Ласковая, любит внимание, отлично уживается с другими питомцами. Гипоаллергенная порода — идеальна для людей с аллергией. Полный пакет документов.",
		Image:       "https://kot.pet/images/parent-2.jpg",
	},
	{
		ID:          3,
		Name:        "Леон",
		Breed:       "Донской сфинкс",
		Category:    catalog.CategoryMale,
		AgeMonths:   5,
		Gender:      catalog.GenderMale,
		Price:       42000,
		Color:       "Загорелый",
		Vaccinated:  true,
		Pedigree:    true,
		Available:   true,
		Description: "Статный кот с гордой осанкой и добрым сердцем. Чемпион WCF с отличной родословной. Несмотря на величественный вид — невероятно нежен с хозяевами. Любит греться на руках и смотреть в окно. Все прививки, ветпаспорт международного образца.",
		Image:       "https://kot.pet/images/parent-3.jpg",
	},
	{
		ID:          4,
		Name:        "Злата",
		Breed:       "Донской сфинкс",
		Category:    catalog.CategoryFemale,
		AgeMonths:   3,
		Gender:      catalog.GenderFemale,
		Price:       45000,
		Color:       "Золотистый",
		Vaccinated:  true,
		Pedigree:    true,
		Available:   true,
		Description: "Очаровательная гранд-чемпионка с золотистым оттенком кожи и умным взглядом. Игривая и энергичная, обожает интерактивные игрушки. Донские сфинксы не линяют — никакой шерсти на одежде! Родословная, ветпаспорт WCF.",
		Image:       "https://kot.pet/images/parent-4.jpg",
	},
	{
		ID:          5,
		Name:        "Барсик",
		Breed:       "Донской сфинкс",
		Category:    catalog.CategoryMale,
		AgeMonths:   2,
		Gender:      catalog.GenderMale,
		Price:       28000,
		Color:       "Розовый",
		Vaccinated:  true,
		Pedigree:    true,
		Available:   true,
		Description: "Милый малыш с большими ушами и бесконечным любопытством. Вырастет в спокойного и преданного компаньона. Тепло его кожи греет лучше любого пледа. Крепкое здоровье, все документы в порядке.",
		Image:       "https://kot.pet/images/review-1-kitten.jpg",
	},
	{
		ID:          6,
		Name:        "Луна",
		Breed:       "Донской сфинкс",
		Category:    catalog.CategoryFemale,
		AgeMonths:   4,
		Gender:      catalog.GenderFemale,
		Price:       32000,
		Color:       "Серебристо-розовый",
		Vaccinated:  true,
		Pedigree:    true,
		Available:   false,
		Description: "Нежная лунная принцесса уже нашла свой дом. Если вас интересует похожий котёнок — напишите нам через форму обратной связи, и мы подберём идеального питомца специально для вас!",
		Image:       "https://kot.pet/images/review-2-kitten.jpg",
	},
	{
		ID:          7,
		Name:        "Милан",
		Breed:       "Донской сфинкс",
		Category:    catalog.CategoryMale,
		AgeMonths:   3,
		Gender:      catalog.GenderMale,
		Price:       36000,
		Color:       "Тёмно-персиковый",
		Vaccinated:  true,
		Pedigree:    true,
		Available:   true,
		Description: "Итальянское имя — итальянский темперамент! Обожает общество людей и никогда не откажется от ласки. Активный и весёлый, превращает каждый день в праздник. Подходит для квартиры любого размера. Привит, документы WCF.",
		Image:       "https://kot.pet/images/review-3-kitten.jpg",
	},
	{
		ID:          8,
		Name:        "Афина",
		Breed:       "Донской сфинкс",
		Category:    catalog.CategoryFemale,
		AgeMonths:   5,
		Gender:      catalog.GenderFemale,
		Price:       40000,
		Color:       "Розово-бежевый",
		Vaccinated:  true,
		Pedigree:    true,
		Available:   true,
		Description: "Богиня домашнего уюта с умным взглядом и грациозными движениями. Необычайно интеллектуальна — быстро учит команды, понимает интонации хозяина. Тепло её кожи заменяет грелку в зимние вечера. Международный ветпаспорт, прививки.",
		Image:       "https://kot.pet/images/hero-cat.jpg",
	},
	{
		ID:          9,
		Name:        "Зефир",
		Breed:       "Донской сфинкс",
		Category:    catalog.CategoryMale,
		AgeMonths:   2,
		Gender:      catalog.GenderMale,
		Price:       26000,
		Color:       "Кремово-белый",
		Vaccinated:  true,
		Pedigree:    true,
		Available:   true,
		Description: "Воздушный и нежный, как его имя. Самый молодой котёнок питомника — полон жизни и игривости. Большие уши-локаторы и бесконечное мурчание. Донские сфинксы не линяют — идеально для чистоплотных хозяев!",
		Image:       "https://kot.pet/images/parent-1.jpg",
	},
	{
		ID:          10,
		Name:        "Диана",
		Breed:       "Донской сфинкс",
		Category:    catalog.CategoryFemale,
		AgeMonths:   6,
		Gender:      catalog.GenderFemale,
		Price:       43000,
		Color:       "Персиково-золотой",
		Vaccinated:  true,
		Pedigree:    true,
		Available:   true,
		Description: "В 6 месяцев Диана уже освоила несколько трюков и знает своё имя. Нежная, контактная, легко привыкает к новому дому. Отличный выбор для тех, кто хочет активного и преданного питомца. Ветпаспорт, прививки.",
		Image:       "https://kot.pet/images/parent-2.jpg",
	},
	{
		ID:          11,
		Name:        "Граф",
		Breed:       "Донской сфинкс",
		Category:    catalog.CategoryMale,
		AgeMonths:   4,
		Gender:      catalog.GenderMale,
		Price:       39000,
		Color:       "Тёмно-коричневый",
		Vaccinated:  true,
		Pedigree:    true,
		Available:   true,
		Description: "Аристократ по происхождению и характеру. Держится с достоинством, но в кругу семьи — нежный и преданный. Любит дремать на тёплом месте рядом с хозяином. Полная родословная, чемпионские предки.",
		Image:       "https://kot.pet/images/parent-3.jpg",
	},
	{
		ID:          12,
		Name:        "Рица",
		Breed:       "Донской сфинкс",
		Category:    catalog.CategoryFemale,
		AgeMonths:   3,
		Gender:      catalog.GenderFemale,
		Price:       37000,
		Color:       "Розово-лиловый",
		Vaccinated:  true,
		Pedigree:    true,
		Available:   true,
		Description: "Названа в честь горного озера — такая же чистая и прекрасная. Не боится купания — редкое качество для кошек! Добрый и открытый характер, быстро находит общий язык с детьми и другими животными. Ветпаспорт, родословная WCF.",
		Image:       "https://kot.pet/images/parent-4.jpg",
	},
}
