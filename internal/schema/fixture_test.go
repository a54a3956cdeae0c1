package schema

import "microdata/internal/vocabulary"

func testVocabulary() *vocabulary.Document {
	return &vocabulary.Document{
		Datatypes: map[string]vocabulary.Datatype{
			"Text":     {Label: "Text"},
			"URL":      {Label: "URL"},
			"Date":     {Label: "Date"},
			"DateTime": {Label: "DateTime"},
			"Time":     {Label: "Time"},
			"Boolean":  {Label: "Boolean"},
			"Integer":  {Label: "Integer"},
			"Float":    {Label: "Float"},
			"Number":   {Label: "Number"},
		},
		Properties: map[string]vocabulary.Property{
			"name":        {Ranges: []string{"Text"}},
			"url":         {Ranges: []string{"URL"}},
			"birthDate":   {Ranges: []string{"Date"}},
			"worksFor":    {Ranges: []string{"Organization", "Person"}},
			"knows":       {Ranges: []string{"Person"}},
			"colleague":   {Ranges: []string{}},
			"price":       {Ranges: []string{"Number"}},
			"productID":   {Ranges: []string{"Text"}},
			"userID":      {Ranges: []string{"Text"}},
			"userId":      {Ranges: []string{"Integer"}},
			"isFamily":    {Ranges: []string{"Boolean"}},
			"ratio":       {Ranges: []string{"Float"}},
			"age":         {Ranges: []string{"Integer"}},
			"opens":       {Ranges: []string{"Time"}},
			"textOrDate":  {Ranges: []string{"Text", "Date"}},
			"created":     {Ranges: []string{"DateTime"}},
			"hasPOS":      {Ranges: []string{"Place"}},
			"dateCreated": {Ranges: []string{"DateTime"}},
		},
		Types: map[string]vocabulary.Type{
			"Person":       {Properties: []string{"name", "worksFor"}},
			"Organization": {Properties: []string{"name", "url", "hasPOS"}},
			"Event":        {Properties: []string{"name", "birthDate", "opens", "isFamily", "age", "ratio", "dateCreated"}},
			"Offer":        {Properties: []string{"price"}},
			"Account":      {Properties: []string{"userID", "userId"}},
			"Post":         {Properties: []string{"name", "created"}},
			"Ghost":        {Properties: []string{"name", "missing"}},
		},
	}
}
