package export

// viewerPage is the self-contained picker page. The catalog travels in
// the application/json block so an exported page can be loaded back as
// a catalog source.
const viewerPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; max-width: 48rem; }
h1 { font-size: 1.3rem; }
select { font-size: 1rem; padding: 0.3rem; min-width: 16rem; }
#chips { margin: 1rem 0; min-height: 2.2rem; }
#chips .chip {
  display: inline-block; margin: 0 0.4rem 0.4rem 0; padding: 0.35rem 0.8rem;
  border: 1px solid #888; border-radius: 1rem; background: #f4f4f4; cursor: pointer;
}
#chips .chip.active { background: #2b6cb0; border-color: #2b6cb0; color: #fff; }
#chips .empty { color: #777; font-style: italic; }
#output { margin-top: 1rem; padding: 0.6rem; border-left: 3px solid #2b6cb0; background: #f8f8f8; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<label for="category-select">Category</label><br>
<select id="category-select">
<option value="">-- choose --</option>
</select>
<div id="chips"></div>
<div id="output"></div>
<script id="catalog-data" type="application/json">{{.CatalogJSON}}</script>
<script>
(function () {
  var catalog = JSON.parse(document.getElementById("catalog-data").textContent);
  var select = document.getElementById("category-select");
  var chips = document.getElementById("chips");
  var output = document.getElementById("output");
  var selection = { category: "", subcategory: "" };

  var byName = {};
  catalog.forEach(function (entry) {
    byName[entry.category] = entry.subcategories || [];
    var option = document.createElement("option");
    option.value = entry.category;
    option.textContent = entry.category;
    select.appendChild(option);
  });

  function selectCategory(name) {
    selection.category = name;
    selection.subcategory = "";
    render();
  }

  function selectSubcategory(name) {
    selection.subcategory = name;
    render();
  }

  function renderChips() {
    chips.innerHTML = "";
    if (!selection.category) {
      var hint = document.createElement("span");
      hint.className = "empty";
      hint.textContent = "Select a category to load subcategories.";
      chips.appendChild(hint);
      return;
    }
    var subs = byName[selection.category] || [];
    if (subs.length === 0) {
      var none = document.createElement("span");
      none.className = "empty";
      none.textContent = "No subcategories configured for this category.";
      chips.appendChild(none);
      return;
    }
    subs.forEach(function (name) {
      var chip = document.createElement("button");
      chip.type = "button";
      chip.className = name === selection.subcategory ? "chip active" : "chip";
      chip.textContent = name;
      chip.addEventListener("click", function () { selectSubcategory(name); });
      chips.appendChild(chip);
    });
  }

  function renderOutput() {
    if (!selection.category || !selection.subcategory) {
      output.textContent = "Choose a category and subcategory.";
      return;
    }
    output.textContent = selection.category + " > " + selection.subcategory;
  }

  function render() {
    renderChips();
    renderOutput();
  }

  select.addEventListener("change", function () { selectCategory(select.value); });
  render();
})();
</script>
</body>
</html>
`
