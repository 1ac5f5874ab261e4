package ingredient

type synonymEntry struct {
	canonical string
	variants  []string
}

// Variants are stored already normalized. The table is not symmetric: a
// variant need not be a key, and a key listing another key is not listed back.
var synonymTable = []synonymEntry{
	{"all-purpose flour", []string{"flour", "plain flour", "ap flour", "all purpose flour"}},
	{"sugar", []string{"granulated sugar", "white sugar", "caster sugar"}},
	{"brown sugar", []string{"light brown sugar", "dark brown sugar"}},
	{"powdered sugar", []string{"confectioners sugar", "confectioners' sugar", "icing sugar"}},
	{"cornstarch", []string{"corn starch", "cornflour"}},
	{"baking soda", []string{"bicarbonate of soda", "sodium bicarbonate"}},
	{"butter", []string{"unsalted butter", "salted butter"}},
	{"milk", []string{"whole milk", "2% milk", "skim milk"}},
	{"heavy cream", []string{"whipping cream", "double cream", "heavy whipping cream"}},
	{"whipping cream", []string{"heavy whipping cream", "double cream"}},
	{"half and half", []string{"half-and-half", "half & half"}},
	{"light cream", []string{"half-and-half", "single cream"}},
	{"egg", []string{"eggs", "large egg", "large eggs"}},
	{"parmesan", []string{"parmesan cheese", "parmigiano reggiano", "parmigiano-reggiano"}},
	{"chicken broth", []string{"chicken stock", "chicken bouillon"}},
	{"beef broth", []string{"beef stock", "beef bouillon"}},
	{"vegetable broth", []string{"vegetable stock", "veggie broth"}},
	{"chicken breast", []string{"chicken breasts", "chicken breast halves"}},
	{"ground beef", []string{"beef mince", "hamburger meat"}},
	{"shrimp", []string{"prawn", "prawns"}},
	{"scallion", []string{"scallions", "green onion", "green onions", "spring onion"}},
	{"green onion", []string{"spring onion", "salad onion"}},
	{"onion", []string{"onions", "yellow onion", "white onion"}},
	{"garlic", []string{"garlic clove", "garlic cloves"}},
	{"tomato", []string{"tomatoes"}},
	{"potato", []string{"potatoes"}},
	{"cilantro", []string{"coriander leaves", "chinese parsley"}},
	{"bell pepper", []string{"capsicum", "sweet pepper", "red bell pepper", "green bell pepper"}},
	{"jalapeno", []string{"jalapenos", "jalapeno pepper"}},
	{"zucchini", []string{"courgette", "zucchinis"}},
	{"eggplant", []string{"aubergine"}},
	{"arugula", []string{"rocket", "roquette"}},
	{"chickpeas", []string{"chickpea", "garbanzo beans", "garbanzo bean"}},
	{"black beans", []string{"black bean"}},
	{"soy sauce", []string{"soya sauce", "shoyu"}},
	{"olive oil", []string{"extra virgin olive oil", "extra-virgin olive oil", "evoo"}},
	{"rice", []string{"white rice", "long grain rice", "long-grain rice"}},
}

// synonymIndex maps each canonical name to its position in synonymTable.
var synonymIndex = func() map[string]int {
	idx := make(map[string]int, len(synonymTable))
	for i, e := range synonymTable {
		idx[e.canonical] = i
	}
	return idx
}()

func variantsOf(key string) []string {
	i, ok := synonymIndex[key]
	if !ok {
		return nil
	}
	return synonymTable[i].variants
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
